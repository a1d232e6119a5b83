package response

import (
	"cinema-pos/internal/data/entity"
)

type MovieResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Genre     string  `json:"genre"`
	Summary   string  `json:"summary"`
	PosterURL *string `json:"poster_url,omitempty"`
}

type ScreeningResponse struct {
	ID        string `json:"id"`
	MovieID   string `json:"movie_id"`
	ShowDay   string `json:"show_day"`
	StartTime string `json:"start_time"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:        movie.ID.String(),
		Title:     movie.Title,
		Genre:     movie.Genre,
		Summary:   movie.Summary,
		PosterURL: movie.PosterURL,
	}
}

func ScreeningToResponse(screening *entity.Screening) ScreeningResponse {
	return ScreeningResponse{
		ID:        screening.ID.String(),
		MovieID:   screening.MovieID.String(),
		ShowDay:   screening.ShowDay,
		StartTime: screening.StartTime,
	}
}
