package getTicket

import (
	"context"
	"log/slog"
	"net/http"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type TicketResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketGetter
type TicketGetter interface {
	GetTicketByID(ctx context.Context, id string) (models.Ticket, bool)
}

func New(log *slog.Logger, getter TicketGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTicket.New"

		log := log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(slog.String("ticket_id", ticketID))

		ticket, ok := getter.GetTicketByID(r.Context(), ticketID)
		if !ok {
			log.Info("ticket not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("ticket not found"))
			return
		}

		log.Info("ticket retrieved")

		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket:   &ticket,
		})
	}
}
