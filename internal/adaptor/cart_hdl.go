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

type CartHandler struct {
	cart     usecase.CartService
	checkout usecase.CheckoutService
	log      *zap.Logger
}

func NewCartHandler(cart usecase.CartService, checkout usecase.CheckoutService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		cart:     cart,
		checkout: checkout,
		log:      log.With(zap.String("handler", "cart")),
	}
}

// CreateCart handles POST /api/carts
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart.Create(r.Context())
	utils.ResponseCreated(w, "Cart created successfully", cart)
}

// GetCart handles GET /api/carts/{id}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")
	if cartID == "" {
		utils.ResponseBadRequest(w, "Cart ID is required", nil)
		return
	}

	cart, err := h.cart.Get(r.Context(), cartID)
	if err != nil {
		handleServiceError(h.log, w, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved successfully", cart)
}

// AddSeat handles POST /api/carts/{id}/seats
func (h *CartHandler) AddSeat(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")
	if cartID == "" {
		utils.ResponseBadRequest(w, "Cart ID is required", nil)
		return
	}

	var req request.AddSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	cart, err := h.cart.AddSeat(r.Context(), cartID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add seat to cart")
		return
	}

	utils.ResponseSuccess(w, "Seat added successfully", cart)
}

// RemoveSeat handles DELETE /api/carts/{id}/seats/{seatNumber}
func (h *CartHandler) RemoveSeat(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")
	seatNumber := chi.URLParam(r, "seatNumber")
	if cartID == "" || seatNumber == "" {
		utils.ResponseBadRequest(w, "Cart ID and seat number are required", nil)
		return
	}

	cart, err := h.cart.RemoveSeat(r.Context(), cartID, seatNumber)
	if err != nil {
		handleServiceError(h.log, w, err, "remove seat from cart")
		return
	}

	utils.ResponseSuccess(w, "Seat removed successfully", cart)
}

// CancelCart handles DELETE /api/carts/{id}
func (h *CartHandler) CancelCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")
	if cartID == "" {
		utils.ResponseBadRequest(w, "Cart ID is required", nil)
		return
	}

	if err := h.cart.Cancel(r.Context(), cartID); err != nil {
		handleServiceError(h.log, w, err, "cancel cart")
		return
	}

	utils.ResponseSuccess(w, "Cart cancelled successfully", nil)
}

// Checkout handles POST /api/carts/{id}/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")
	if cartID == "" {
		utils.ResponseBadRequest(w, "Cart ID is required", nil)
		return
	}

	sale, err := h.checkout.Checkout(r.Context(), cartID)
	if err != nil {
		handleServiceError(h.log, w, err, "checkout cart")
		return
	}

	utils.ResponseCreated(w, "Checkout completed successfully", sale)
}
