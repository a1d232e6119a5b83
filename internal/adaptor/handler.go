package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-pos/internal/data/repository"
	"cinema-pos/internal/usecase"
	"cinema-pos/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog *CatalogHandler
	Cart    *CartHandler
	Manage  *ManageHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog: NewCatalogHandler(service.Catalog, service.SeatMap, log),
		Cart:    NewCartHandler(service.Cart, service.Checkout, log),
		Manage:  NewManageHandler(service.Catalog, service.Config, service.Checkout, log),
	}
}

// handleServiceError maps service errors to HTTP status codes. Typed values
// are matched with errors.Is; anything unrecognized is a 500 and the message
// stays out of the response body.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrSeatAlreadySold):
		log.Warn(operation+" failed - seat taken", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, repository.ErrSeatNotFound),
		errors.Is(err, usecase.ErrCartNotFound),
		errors.Is(err, usecase.ErrSeatNotInCart):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrMixedScreening),
		errors.Is(err, usecase.ErrEmptyCart):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "must not"),
		strings.Contains(errMsg, "is not a number"),
		strings.Contains(errMsg, "unknown patron category"):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
