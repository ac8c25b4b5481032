package getTicketQR

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/lib/clock"
	"eventTicketing/internal/lib/logger/sl"
	"eventTicketing/internal/models"
	"eventTicketing/internal/qrpayload"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const maxSize = 1024

type TicketGetter interface {
	GetTicketByID(ctx context.Context, id string) (models.Ticket, bool)
}

// New serves the ticket's QR code as PNG. ?size= sets the edge in pixels.
func New(log *slog.Logger, getter TicketGetter, clk clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTicketQR.New"

		log := log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(slog.String("ticket_id", ticketID))

		size := qrpayload.DefaultSize
		if raw := r.URL.Query().Get("size"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 || n > maxSize {
				log.Error("invalid qr size", slog.String("size", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid size"))
				return
			}
			size = n
		}

		ticket, ok := getter.GetTicketByID(r.Context(), ticketID)
		if !ok {
			log.Info("ticket not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("ticket not found"))
			return
		}

		png, err := qrpayload.PNG(qrpayload.New(ticket, clk.Now()), size)
		if err != nil {
			log.Error("failed to render qr code", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to render QR code"))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `inline; filename="Ticket-`+ticket.ID+`.png"`)
		w.WriteHeader(http.StatusOK)
		if _, err = w.Write(png); err != nil {
			log.Error("failed to write qr code", sl.Err(err))
		}
	}
}
