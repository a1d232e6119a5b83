package wire

import (
	"cinema-pos/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler) {
	r.Route("/api/carts", func(r chi.Router) {
		r.Post("/", cartHandler.CreateCart)
		r.Get("/{id}", cartHandler.GetCart)
		r.Delete("/{id}", cartHandler.CancelCart)

		r.Post("/{id}/seats", cartHandler.AddSeat)
		r.Delete("/{id}/seats/{seatNumber}", cartHandler.RemoveSeat)

		r.Post("/{id}/checkout", cartHandler.Checkout)
	})
}
