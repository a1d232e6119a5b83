package wire

import (
	"cinema-pos/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireManage(r chi.Router, manageHandler *adaptor.ManageHandler) {
	// Manager routes. Authentication sits in front of this service at the
	// terminal, so no session middleware here.
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/movies", manageHandler.CreateMovie)
		r.Put("/movies/{id}", manageHandler.UpdateMovie)

		r.Post("/screenings", manageHandler.ScheduleScreening)

		r.Get("/pricing", manageHandler.GetPricing)
		r.Put("/pricing", manageHandler.UpdatePricing)

		r.Get("/revenue", manageHandler.GetRevenueSummary)
	})
}
