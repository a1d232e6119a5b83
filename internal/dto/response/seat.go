package response

import "cinema-pos/internal/data/entity"

type SeatResponse struct {
	SeatNumber string `json:"seat_number"`
	Available  bool   `json:"available"`
}

type SeatMapResponse struct {
	ScreeningID string         `json:"screening_id"`
	Seats       []SeatResponse `json:"seats"`
	VacantCount int            `json:"vacant_count"`
}

func SeatToResponse(seat *entity.ScreeningSeat) SeatResponse {
	return SeatResponse{
		SeatNumber: seat.SeatNumber,
		Available:  seat.Status == entity.SeatStatusAvailable,
	}
}
