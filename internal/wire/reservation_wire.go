package wire

import (
	"seat-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	// GET /api/seats - seat map with current statuses (public)
	r.Get("/api/seats", reservationHandler.ListSeats)

	r.Route("/api/seats/{id}", func(r chi.Router) {
		// POST /api/seats/{id}/lock - place a temporary hold on a seat
		r.Post("/lock", reservationHandler.LockSeat)

		// POST /api/seats/{id}/confirm - finalize the booking for the lock holder
		r.Post("/confirm", reservationHandler.ConfirmSeat)

		// POST /api/seats/{id}/release - administrative unlock
		r.Post("/release", reservationHandler.ReleaseSeat)
	})
}
