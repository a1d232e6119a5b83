package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-pos/internal/data/entity"
	"cinema-pos/internal/data/repository"
	"cinema-pos/internal/dto/request"
	"cinema-pos/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	Create(ctx context.Context) *response.CartResponse
	Get(ctx context.Context, cartID string) (*response.CartResponse, error)

	// AddSeat holds a seat and prices it at the current configuration. The
	// first seat pins the cart to its screening; later adds must match.
	AddSeat(ctx context.Context, cartID string, req *request.AddSeatRequest) (*response.CartResponse, error)

	// RemoveSeat releases the hold and drops the line. Removing the last
	// seat unpins the cart so it can be reused for another screening.
	RemoveSeat(ctx context.Context, cartID string, seatNumber string) (*response.CartResponse, error)

	// Cancel releases every held seat and discards the cart.
	Cancel(ctx context.Context, cartID string) error
}

type cartService struct {
	carts   *CartStore
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewCartService(carts *CartStore, repo *repository.Repository, timeout time.Duration, log *zap.Logger) CartService {
	return &cartService{
		carts:   carts,
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) Create(ctx context.Context) *response.CartResponse {
	cart := s.carts.Create()
	s.log.Info("Cart created", zap.String("cart_id", cart.ID.String()))
	return cart.toResponse()
}

func (s *cartService) Get(ctx context.Context, cartID string) (*response.CartResponse, error) {
	cart, err := s.carts.find(cartID)
	if err != nil {
		return nil, err
	}
	return cart.toResponse(), nil
}

func (s *cartService) AddSeat(ctx context.Context, cartID string, req *request.AddSeatRequest) (*response.CartResponse, error) {
	cart, err := s.carts.find(cartID)
	if err != nil {
		return nil, err
	}

	screeningID, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening ID format %s: %w", req.ScreeningID, err)
	}

	if cart.ScreeningID != uuid.Nil && cart.ScreeningID != screeningID {
		return nil, fmt.Errorf("screening %s: %w", req.ScreeningID, ErrMixedScreening)
	}

	category := entity.PatronCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("unknown patron category %q", req.Category)
	}

	if cart.lineIndex(req.SeatNumber) >= 0 {
		// Already in this cart; adding again changes nothing.
		return cart.toResponse(), nil
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Seat.Reserve(ctx, screeningID, req.SeatNumber, cart.ID); err != nil {
		return nil, err
	}

	cfg, err := s.repo.Config.GetPricing(ctx)
	if err != nil {
		// The hold is already placed; give the seat back before failing.
		if relErr := s.repo.Seat.Release(ctx, screeningID, req.SeatNumber, cart.ID); relErr != nil {
			s.log.Error("Failed to release seat after pricing failure",
				zap.Error(relErr),
				zap.String("cart_id", cartID),
				zap.String("seat_number", req.SeatNumber),
			)
		}
		return nil, fmt.Errorf("price seat %s: %w", req.SeatNumber, err)
	}

	cart.ScreeningID = screeningID
	cart.Lines = append(cart.Lines, CartLine{
		SeatNumber: req.SeatNumber,
		Category:   category,
		Price:      PriceFor(cfg, category),
	})

	s.log.Info("Seat added to cart",
		zap.String("cart_id", cartID),
		zap.String("screening_id", req.ScreeningID),
		zap.String("seat_number", req.SeatNumber),
		zap.String("category", req.Category),
	)
	return cart.toResponse(), nil
}

func (s *cartService) RemoveSeat(ctx context.Context, cartID string, seatNumber string) (*response.CartResponse, error) {
	cart, err := s.carts.find(cartID)
	if err != nil {
		return nil, err
	}

	idx := cart.lineIndex(seatNumber)
	if idx < 0 {
		return nil, fmt.Errorf("seat %s: %w", seatNumber, ErrSeatNotInCart)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Seat.Release(ctx, cart.ScreeningID, seatNumber, cart.ID); err != nil {
		return nil, err
	}

	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	if len(cart.Lines) == 0 {
		cart.ScreeningID = uuid.Nil
	}

	s.log.Info("Seat removed from cart",
		zap.String("cart_id", cartID),
		zap.String("seat_number", seatNumber),
	)
	return cart.toResponse(), nil
}

func (s *cartService) Cancel(ctx context.Context, cartID string) error {
	cart, err := s.carts.find(cartID)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	// Release is idempotent, so a partial failure here leaves seats that a
	// retry of Cancel can still free.
	for _, line := range cart.Lines {
		if err := s.repo.Seat.Release(ctx, cart.ScreeningID, line.SeatNumber, cart.ID); err != nil {
			return fmt.Errorf("cancel cart %s: %w", cartID, err)
		}
	}

	s.carts.Delete(cart.ID)
	s.log.Info("Cart cancelled",
		zap.String("cart_id", cartID),
		zap.Int("released_seats", len(cart.Lines)),
	)
	return nil
}

