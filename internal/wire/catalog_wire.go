package wire

import (
	"cinema-pos/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// Cashier lookups: movies, genres, screenings and the live seat map.
	r.Get("/api/movies", catalogHandler.SearchMovies)
	r.Get("/api/genres", catalogHandler.ListGenres)

	// The lookup route must register before the {id} subtree so "lookup" is
	// not swallowed as a screening ID.
	r.Get("/api/screenings/lookup", catalogHandler.FindScreening)
	r.Get("/api/screenings", catalogHandler.ListScreenings)
	r.Get("/api/screenings/{id}", catalogHandler.GetScreening)
	r.Get("/api/screenings/{id}/seats", catalogHandler.GetSeatMap)
	r.Get("/api/screenings/{id}/vacant", catalogHandler.GetVacantCount)
}
