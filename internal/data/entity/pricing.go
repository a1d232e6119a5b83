package entity

import "github.com/shopspring/decimal"

type PatronCategory string

const (
	PatronStandard PatronCategory = "standard"
	PatronSenior   PatronCategory = "senior"
	PatronJunior   PatronCategory = "junior"
)

func (c PatronCategory) Valid() bool {
	switch c {
	case PatronStandard, PatronSenior, PatronJunior:
		return true
	}
	return false
}

// PricingConfig holds the current fare parameters. Discounts are fractional
// rates (0.20 for 20%), already converted from the stored percentages.
type PricingConfig struct {
	BasePrice      decimal.Decimal
	SeniorDiscount decimal.Decimal
	JuniorDiscount decimal.Decimal
}
