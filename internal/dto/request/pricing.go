package request

// Amounts travel as strings so values like "120.00" survive the trip into
// exact decimals. Discounts are percentages, matching the manager screen.
type UpdatePricingRequest struct {
	BasePrice         string `json:"base_price" validate:"required"`
	SeniorDiscountPct string `json:"senior_discount_pct" validate:"required"`
	JuniorDiscountPct string `json:"junior_discount_pct" validate:"required"`
}
