package getTickets

import (
	"context"
	"log/slog"
	"net/http"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/models"

	"github.com/go-chi/render"
)

type TicketsResponse struct {
	response.Response
	Tickets []models.Ticket `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsGetter
type TicketsGetter interface {
	GetAllTickets(ctx context.Context) []models.Ticket
	GetTicketsByEventID(ctx context.Context, eventID string) []models.Ticket
}

// New lists stored tickets, optionally filtered by ?eventId=.
func New(log *slog.Logger, getter TicketsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTickets.New"

		log := log.With(slog.String("op", op))

		var list []models.Ticket
		if eventID := r.URL.Query().Get("eventId"); eventID != "" {
			log = log.With(slog.String("event_id", eventID))
			list = getter.GetTicketsByEventID(r.Context(), eventID)
		} else {
			list = getter.GetAllTickets(r.Context())
		}

		if list == nil {
			list = []models.Ticket{}
		}

		log.Info("tickets retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Tickets:  list,
		})
	}
}
