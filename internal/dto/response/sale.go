package response

import "time"

type SaleResponse struct {
	ID          string    `json:"id"`
	SaleNumber  string    `json:"sale_number"`
	ScreeningID string    `json:"screening_id"`
	TotalAmount string    `json:"total_amount"`
	TaxAmount   string    `json:"tax_amount"`
	SeatNumbers []string  `json:"seat_numbers"`
	CreatedAt   time.Time `json:"created_at"`
}

type RevenueSummaryResponse struct {
	TotalRevenue string `json:"total_revenue"`
	TotalTax     string `json:"total_tax"`
}
