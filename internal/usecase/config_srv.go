package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-pos/internal/data/repository"
	"cinema-pos/internal/dto/request"
	"cinema-pos/internal/dto/response"
	"cinema-pos/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ConfigService interface {
	GetPricing(ctx context.Context) (*response.PricingResponse, error)

	// UpdatePricing replaces the fare parameters. Prices already sitting in
	// carts keep the value they were added at.
	UpdatePricing(ctx context.Context, req *request.UpdatePricingRequest) (*response.PricingResponse, error)
}

type configService struct {
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewConfigService(repo *repository.Repository, timeout time.Duration, log *zap.Logger) ConfigService {
	return &configService{
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "config")),
	}
}

func (s *configService) GetPricing(ctx context.Context) (*response.PricingResponse, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	cfg, err := s.repo.Config.GetPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pricing: %w", err)
	}

	return &response.PricingResponse{
		BasePrice:         cfg.BasePrice.StringFixed(2),
		SeniorDiscountPct: cfg.SeniorDiscount.Mul(oneHundred).StringFixed(2),
		JuniorDiscountPct: cfg.JuniorDiscount.Mul(oneHundred).StringFixed(2),
	}, nil
}

func (s *configService) UpdatePricing(ctx context.Context, req *request.UpdatePricingRequest) (*response.PricingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update pricing validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	basePrice, err := parseAmount("base_price", req.BasePrice)
	if err != nil {
		return nil, err
	}
	seniorPct, err := parsePercent("senior_discount_pct", req.SeniorDiscountPct)
	if err != nil {
		return nil, err
	}
	juniorPct, err := parsePercent("junior_discount_pct", req.JuniorDiscountPct)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Config.UpdatePricing(ctx, basePrice, seniorPct, juniorPct); err != nil {
		return nil, fmt.Errorf("update pricing: %w", err)
	}

	return &response.PricingResponse{
		BasePrice:         basePrice.StringFixed(2),
		SeniorDiscountPct: seniorPct.StringFixed(2),
		JuniorDiscountPct: juniorPct.StringFixed(2),
	}, nil
}

var oneHundred = decimal.NewFromInt(100)

func parseAmount(field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q is not a number: %w", field, raw, err)
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative, got %s", field, raw)
	}
	return value, nil
}

func parsePercent(field, raw string) (decimal.Decimal, error) {
	value, err := parseAmount(field, raw)
	if err != nil {
		return decimal.Zero, err
	}
	if value.GreaterThan(oneHundred) {
		return decimal.Zero, fmt.Errorf("%s must not exceed 100, got %s", field, raw)
	}
	return value, nil
}
