package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-pos/internal/data/entity"
	"cinema-pos/internal/data/repository"
	"cinema-pos/internal/dto/response"
	"cinema-pos/pkg/database"
	"cinema-pos/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutService interface {
	// Checkout finalizes a cart: every held seat flips to sold and one sale
	// row is written, atomically. On success the cart is gone; on failure
	// the holds survive and the cashier can retry or cancel.
	Checkout(ctx context.Context, cartID string) (*response.SaleResponse, error)

	RevenueSummary(ctx context.Context) (*response.RevenueSummaryResponse, error)
}

type checkoutService struct {
	db      database.PgxIface
	repo    *repository.Repository
	carts   *CartStore
	timeout time.Duration
	log     *zap.Logger
}

func NewCheckoutService(db database.PgxIface, repo *repository.Repository, carts *CartStore, timeout time.Duration, log *zap.Logger) CheckoutService {
	return &checkoutService{
		db:      db,
		repo:    repo,
		carts:   carts,
		timeout: timeout,
		log:     log.With(zap.String("service", "checkout")),
	}
}

func (s *checkoutService) Checkout(ctx context.Context, cartID string) (*response.SaleResponse, error) {
	cart, err := s.carts.find(cartID)
	if err != nil {
		return nil, err
	}

	if len(cart.Lines) == 0 {
		return nil, fmt.Errorf("cart %s: %w", cartID, ErrEmptyCart)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	taxRate, err := s.repo.Config.TaxRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read tax rate: %v", ErrCheckoutFailed, err)
	}

	total := cart.Total()
	sale := &entity.Sale{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		SaleNumber:  utils.GenerateSaleNumber(),
		ScreeningID: cart.ScreeningID,
		TotalAmount: total,
		TaxAmount:   total.Mul(taxRate).Round(2),
	}
	seatNumbers := cart.seatNumbers()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin checkout", zap.Error(err), zap.String("cart_id", cartID))
		return nil, fmt.Errorf("%w: begin: %v", ErrCheckoutFailed, err)
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Seat.CommitSeatsTx(ctx, tx, cart.ScreeningID, cart.ID, seatNumbers); err != nil {
		s.log.Error("Failed to commit seats at checkout",
			zap.Error(err),
			zap.String("cart_id", cartID),
		)
		return nil, fmt.Errorf("%w: commit seats: %v", ErrCheckoutFailed, err)
	}

	if err := s.repo.Sale.CreateTx(ctx, tx, sale, seatNumbers); err != nil {
		s.log.Error("Failed to record sale",
			zap.Error(err),
			zap.String("cart_id", cartID),
			zap.String("sale_number", sale.SaleNumber),
		)
		return nil, fmt.Errorf("%w: record sale: %v", ErrCheckoutFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit checkout", zap.Error(err), zap.String("cart_id", cartID))
		return nil, fmt.Errorf("%w: commit: %v", ErrCheckoutFailed, err)
	}

	s.carts.Delete(cart.ID)

	s.log.Info("Checkout completed",
		zap.String("cart_id", cartID),
		zap.String("sale_number", sale.SaleNumber),
		zap.String("screening_id", cart.ScreeningID.String()),
		zap.Int("seat_count", len(seatNumbers)),
		zap.String("total_amount", sale.TotalAmount.StringFixed(2)),
	)

	return &response.SaleResponse{
		ID:          sale.ID.String(),
		SaleNumber:  sale.SaleNumber,
		ScreeningID: sale.ScreeningID.String(),
		TotalAmount: sale.TotalAmount.StringFixed(2),
		TaxAmount:   sale.TaxAmount.StringFixed(2),
		SeatNumbers: seatNumbers,
		CreatedAt:   sale.CreatedAt,
	}, nil
}

func (s *checkoutService) RevenueSummary(ctx context.Context) (*response.RevenueSummaryResponse, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	revenue, tax, err := s.repo.Sale.RevenueSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}

	return &response.RevenueSummaryResponse{
		TotalRevenue: revenue.StringFixed(2),
		TotalTax:     tax.StringFixed(2),
	}, nil
}

