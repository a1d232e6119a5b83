package request

type AddSeatRequest struct {
	ScreeningID string `json:"screening_id" validate:"required,uuid4"`
	SeatNumber  string `json:"seat_number" validate:"required,min=1,max=10"`
	Category    string `json:"category" validate:"required,oneof=standard senior junior"`
}
