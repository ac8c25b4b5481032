package checkInTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventTicketing/internal/http-server/middleware/adminauth"
	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/lib/logger/sl"
	"eventTicketing/internal/models"
	"eventTicketing/internal/tickets"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CheckInResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCheckInner
type TicketCheckInner interface {
	ValidateTicket(ctx context.Context, id string) models.Validation
	CheckInTicket(ctx context.Context, id string) (models.Ticket, error)
}

// New validates before checking in, so a used ticket is rejected here
// rather than having its check-in time overwritten.
func New(log *slog.Logger, svc TicketCheckInner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.checkInTicket.New"

		log := log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(
			slog.String("ticket_id", ticketID),
			slog.String("admin", adminauth.UserFromContext(r.Context())),
		)

		v := svc.ValidateTicket(r.Context(), ticketID)
		switch v.Status {
		case models.ValidationNotFound:
			log.Info("ticket not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("ticket not found"))
			return
		case models.ValidationAlreadyUsed:
			log.Info("ticket already used")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, CheckInResponse{
				Response: response.Error("ticket already used"),
				Ticket:   v.Ticket,
			})
			return
		}

		ticket, err := svc.CheckInTicket(r.Context(), ticketID)
		if err != nil {
			log.Error("failed to check in ticket", sl.Err(err))

			if errors.Is(err, tickets.ErrTicketNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check in ticket"))
			return
		}

		log.Info("ticket checked in successfully", slog.String("full_name", ticket.FullName))

		render.JSON(w, r, CheckInResponse{
			Response: response.OK(),
			Ticket:   &ticket,
		})
	}
}
