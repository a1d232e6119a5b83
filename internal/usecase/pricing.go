package usecase

import (
	"cinema-pos/internal/data/entity"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// PriceFor computes the fare of a single seat: base price reduced by the
// category's discount rate. The result is rounded half-up to two decimal
// places once, at the end; intermediate values stay exact.
func PriceFor(cfg *entity.PricingConfig, category entity.PatronCategory) decimal.Decimal {
	price := cfg.BasePrice.Mul(one.Sub(discountRate(cfg, category)))
	return price.Round(2)
}

func discountRate(cfg *entity.PricingConfig, category entity.PatronCategory) decimal.Decimal {
	switch category {
	case entity.PatronSenior:
		return cfg.SeniorDiscount
	case entity.PatronJunior:
		return cfg.JuniorDiscount
	default:
		return decimal.Zero
	}
}
