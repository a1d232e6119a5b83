package request

type MovieRequest struct {
	Title     string  `json:"title" validate:"required,min=1,max=255"`
	Genre     string  `json:"genre" validate:"required,min=1,max=100"`
	Summary   string  `json:"summary" validate:"required"`
	PosterURL *string `json:"poster_url,omitempty"`
}

type MovieUpdateRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Genre     *string `json:"genre,omitempty" validate:"omitempty,min=1,max=100"`
	Summary   *string `json:"summary,omitempty"`
	PosterURL *string `json:"poster_url,omitempty"`
}

type ScheduleScreeningRequest struct {
	MovieID     string `json:"movie_id" validate:"required,uuid4"`
	ShowDay     string `json:"show_day" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	SeatRows    int    `json:"seat_rows" validate:"required,min=1,max=26"`
	SeatsPerRow int    `json:"seats_per_row" validate:"required,min=1,max=50"`
}
