package validateTicket

import (
	"context"
	"log/slog"
	"net/http"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ValidationResponse struct {
	response.Response
	Validation models.Validation `json:"validation"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketValidator
type TicketValidator interface {
	ValidateTicket(ctx context.Context, id string) models.Validation
}

// New reports whether a ticket may be checked in. Invalid tickets are
// still a 200: the outcome is in the validation body.
func New(log *slog.Logger, validator TicketValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.validateTicket.New"

		log := log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		v := validator.ValidateTicket(r.Context(), ticketID)

		log.Info("ticket validated",
			slog.String("ticket_id", ticketID),
			slog.String("result", string(v.Status)),
		)

		render.JSON(w, r, ValidationResponse{
			Response:   response.OK(),
			Validation: v,
		})
	}
}
