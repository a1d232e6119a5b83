package response

type PricingResponse struct {
	BasePrice         string `json:"base_price"`
	SeniorDiscountPct string `json:"senior_discount_pct"`
	JuniorDiscountPct string `json:"junior_discount_pct"`
}
