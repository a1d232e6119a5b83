package repository

import (
	"cinema-pos/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie     MovieRepository
	Screening ScreeningRepository
	Seat      SeatRepository
	Sale      SaleRepository
	Config    ConfigRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:     NewMovieRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Sale:      NewSaleRepository(db, log),
		Config:    NewConfigRepository(db, log),
	}
}
