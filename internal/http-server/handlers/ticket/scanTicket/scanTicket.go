package scanTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/lib/logger/sl"
	"eventTicketing/internal/metrics"
	"eventTicketing/internal/models"
	"eventTicketing/internal/qrpayload"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// ScanRequest carries the raw text decoded from a QR code by the scanner.
type ScanRequest struct {
	Data string `json:"data" validate:"required"`
}

type ScanResponse struct {
	response.Response
	Payload    *qrpayload.Payload `json:"payload,omitempty"`
	Validation *models.Validation `json:"validation,omitempty"`
}

type TicketValidator interface {
	ValidateTicket(ctx context.Context, id string) models.Validation
}

func New(log *slog.Logger, ticketValidator TicketValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.scanTicket.New"

		log := log.With(slog.String("op", op))

		var req ScanRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		payload, err := qrpayload.Parse([]byte(req.Data))
		if err != nil {
			metrics.Scan(metrics.ScanInvalidFormat)
			log.Info("invalid qr payload", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid QR code format"))
			return
		}

		v := ticketValidator.ValidateTicket(r.Context(), payload.Ticket)
		metrics.Scan(string(v.Status))

		log.Info("ticket scanned",
			slog.String("ticket_id", payload.Ticket),
			slog.String("result", string(v.Status)),
		)

		render.JSON(w, r, ScanResponse{
			Response:   response.OK(),
			Payload:    &payload,
			Validation: &v,
		})
	}
}
