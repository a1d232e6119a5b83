package response

type CartLineResponse struct {
	SeatNumber string `json:"seat_number"`
	Category   string `json:"category"`
	Price      string `json:"price"`
}

type CartResponse struct {
	ID          string             `json:"id"`
	ScreeningID string             `json:"screening_id,omitempty"`
	Lines       []CartLineResponse `json:"lines"`
	Total       string             `json:"total"`
}
