package entity

type Movie struct {
	Base
	Title     string  `db:"title"`
	Genre     string  `db:"genre"`
	Summary   string  `db:"summary"`
	PosterURL *string `db:"poster_url"`
}
