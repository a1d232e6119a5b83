package entity

import "github.com/google/uuid"

// Screening is one scheduled showing of a movie. The (movie, show_day,
// start_time) triple stays unique but rows are referenced by the surrogate ID.
type Screening struct {
	Base
	MovieID   uuid.UUID `db:"movie_id"`
	ShowDay   string    `db:"show_day"`   // 2006-01-02
	StartTime string    `db:"start_time"` // 15:04
}
