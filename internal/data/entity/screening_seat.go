package entity

import "github.com/google/uuid"

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusReserved  SeatStatus = "reserved"
	SeatStatusSold      SeatStatus = "sold"
)

// ScreeningSeat is one bookable seat of a screening. A reserved seat carries
// the ID of the holding cart; a sold seat never transitions back.
type ScreeningSeat struct {
	BaseNoDelete
	ScreeningID uuid.UUID  `db:"screening_id"`
	SeatNumber  string     `db:"seat_number"` // A1, A2, B1, etc.
	Status      SeatStatus `db:"status"`
	HoldID      *uuid.UUID `db:"hold_id"`
}
