package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-pos/internal/dto/request"
	"cinema-pos/internal/dto/response"
	"cinema-pos/internal/usecase"
	"cinema-pos/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCartService struct {
	cart    *response.CartResponse
	addErr  error
	lastReq *request.AddSeatRequest
}

func (s *stubCartService) Create(ctx context.Context) *response.CartResponse {
	return s.cart
}

func (s *stubCartService) Get(ctx context.Context, cartID string) (*response.CartResponse, error) {
	if cartID != s.cart.ID {
		return nil, fmt.Errorf("cart %s: %w", cartID, usecase.ErrCartNotFound)
	}
	return s.cart, nil
}

func (s *stubCartService) AddSeat(ctx context.Context, cartID string, req *request.AddSeatRequest) (*response.CartResponse, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.lastReq = req
	return s.cart, nil
}

func (s *stubCartService) RemoveSeat(ctx context.Context, cartID string, seatNumber string) (*response.CartResponse, error) {
	return s.cart, nil
}

func (s *stubCartService) Cancel(ctx context.Context, cartID string) error {
	return nil
}

type stubCheckoutService struct {
	sale *response.SaleResponse
	err  error
}

func (s *stubCheckoutService) Checkout(ctx context.Context, cartID string) (*response.SaleResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sale, nil
}

func (s *stubCheckoutService) RevenueSummary(ctx context.Context) (*response.RevenueSummaryResponse, error) {
	return &response.RevenueSummaryResponse{TotalRevenue: "0.00", TotalTax: "0.00"}, nil
}

func newCartRouter(cart usecase.CartService, checkout usecase.CheckoutService) *chi.Mux {
	h := NewCartHandler(cart, checkout, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/carts", h.CreateCart)
	r.Get("/api/carts/{id}", h.GetCart)
	r.Post("/api/carts/{id}/seats", h.AddSeat)
	r.Delete("/api/carts/{id}/seats/{seatNumber}", h.RemoveSeat)
	r.Post("/api/carts/{id}/checkout", h.Checkout)
	return r
}

func TestCartHandler_AddSeat(t *testing.T) {
	stub := &stubCartService{cart: &response.CartResponse{ID: "c1", Total: "100.00"}}
	router := newCartRouter(stub, &stubCheckoutService{})

	body := `{"screening_id":"9f4adcd8-9a62-4a52-9bb5-671b8ae7e682","seat_number":"A1","category":"standard"}`
	req := httptest.NewRequest(http.MethodPost, "/api/carts/c1/seats", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastReq)
	assert.Equal(t, "A1", stub.lastReq.SeatNumber)
	assert.Equal(t, "standard", stub.lastReq.Category)
}

func TestCartHandler_AddSeat_RejectsBadBody(t *testing.T) {
	stub := &stubCartService{cart: &response.CartResponse{ID: "c1"}}
	router := newCartRouter(stub, &stubCheckoutService{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing seat number", `{"screening_id":"9f4adcd8-9a62-4a52-9bb5-671b8ae7e682","category":"standard"}`},
		{"bad category", `{"screening_id":"9f4adcd8-9a62-4a52-9bb5-671b8ae7e682","seat_number":"A1","category":"child"}`},
		{"bad screening id", `{"screening_id":"nope","seat_number":"A1","category":"standard"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/carts/c1/seats", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, stub.lastReq, "service must not be called")
		})
	}
}

func TestCartHandler_Checkout(t *testing.T) {
	sale := &response.SaleResponse{
		ID:          "s1",
		SaleNumber:  "SALE-20260831-120000-0001",
		TotalAmount: "180.00",
		TaxAmount:   "14.40",
		SeatNumbers: []string{"A1", "A2"},
	}
	router := newCartRouter(&stubCartService{cart: &response.CartResponse{ID: "c1"}}, &stubCheckoutService{sale: sale})

	req := httptest.NewRequest(http.MethodPost, "/api/carts/c1/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "180.00", data["total_amount"])
}

func TestCartHandler_Checkout_EmptyCart(t *testing.T) {
	checkout := &stubCheckoutService{err: fmt.Errorf("cart c1: %w", usecase.ErrEmptyCart)}
	router := newCartRouter(&stubCartService{cart: &response.CartResponse{ID: "c1"}}, checkout)

	req := httptest.NewRequest(http.MethodPost, "/api/carts/c1/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_GetCart_NotFound(t *testing.T) {
	router := newCartRouter(&stubCartService{cart: &response.CartResponse{ID: "c1"}}, &stubCheckoutService{})

	req := httptest.NewRequest(http.MethodGet, "/api/carts/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
