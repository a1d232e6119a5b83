package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-pos/internal/dto/request"
	"cinema-pos/internal/usecase"
	"cinema-pos/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ManageHandler serves the manager screens: catalog maintenance, fare
// configuration and the revenue readout.
type ManageHandler struct {
	catalog  usecase.CatalogService
	config   usecase.ConfigService
	checkout usecase.CheckoutService
	log      *zap.Logger
}

func NewManageHandler(catalog usecase.CatalogService, config usecase.ConfigService, checkout usecase.CheckoutService, log *zap.Logger) *ManageHandler {
	return &ManageHandler{
		catalog:  catalog,
		config:   config,
		checkout: checkout,
		log:      log.With(zap.String("handler", "manage")),
	}
}

// CreateMovie handles POST /api/admin/movies
func (h *ManageHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.catalog.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PUT /api/admin/movies/{id}
func (h *ManageHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.catalog.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// ScheduleScreening handles POST /api/admin/screenings
func (h *ManageHandler) ScheduleScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	screening, err := h.catalog.ScheduleScreening(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "schedule screening")
		return
	}

	utils.ResponseCreated(w, "Screening scheduled successfully", screening)
}

// GetPricing handles GET /api/admin/pricing
func (h *ManageHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	pricing, err := h.config.GetPricing(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get pricing")
		return
	}

	utils.ResponseSuccess(w, "Pricing retrieved successfully", pricing)
}

// UpdatePricing handles PUT /api/admin/pricing
func (h *ManageHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pricing, err := h.config.UpdatePricing(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update pricing")
		return
	}

	utils.ResponseSuccess(w, "Pricing updated successfully", pricing)
}

// GetRevenueSummary handles GET /api/admin/revenue
func (h *ManageHandler) GetRevenueSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.checkout.RevenueSummary(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get revenue summary")
		return
	}

	utils.ResponseSuccess(w, "Revenue summary retrieved successfully", summary)
}
