package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the immutable receipt written at checkout.
type Sale struct {
	BaseSimple
	SaleNumber  string          `db:"sale_number"`
	ScreeningID uuid.UUID       `db:"screening_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
}

type SaleSeat struct {
	BaseSimple
	SaleID     uuid.UUID `db:"sale_id"`
	SeatNumber string    `db:"seat_number"`
}
