package usecase

import (
	"context"
	"time"

	"cinema-pos/internal/data/repository"
	"cinema-pos/pkg/database"
	"cinema-pos/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog  CatalogService
	SeatMap  SeatMapService
	Cart     CartService
	Checkout CheckoutService
	Config   ConfigService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	carts := NewCartStore()
	timeout := config.Storage.Timeout

	return &Service{
		Catalog:  NewCatalogService(db, repo, timeout, log),
		SeatMap:  NewSeatMapService(repo, timeout, log),
		Cart:     NewCartService(carts, repo, timeout, log),
		Checkout: NewCheckoutService(db, repo, carts, timeout, log),
		Config:   NewConfigService(repo, timeout, log),
	}
}

// withTimeout bounds a storage round trip. A zero timeout means the caller's
// context is the only limit.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
