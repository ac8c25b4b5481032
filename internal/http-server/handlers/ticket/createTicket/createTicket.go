package createTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/lib/logger/sl"
	"eventTicketing/internal/models"
	"eventTicketing/internal/tickets"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// TicketRequest requires presence only; email and phone formats are not checked.
type TicketRequest struct {
	FullName   string     `json:"fullName" validate:"required"`
	Email      string     `json:"email" validate:"required"`
	Phone      string     `json:"phone" validate:"required"`
	Quantity   int        `json:"quantity"`
	EventTitle string     `json:"eventTitle,omitempty"`
	EventDate  *time.Time `json:"eventDate,omitempty"`
}

type TicketResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCreator
type TicketCreator interface {
	CreateTicket(ctx context.Context, in tickets.CreateInput) (models.Ticket, error)
}

type EventGetter interface {
	GetEventByID(id string) (models.Event, bool)
}

func New(log *slog.Logger, creator TicketCreator, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.createTicket.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req TicketRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.String("full_name", req.FullName), slog.Int("quantity", req.Quantity))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if req.Quantity < 1 {
			req.Quantity = 1
		}

		title := req.EventTitle
		if title == "" {
			if event, ok := events.GetEventByID(eventID); ok {
				title = event.Title
			}
		}

		ticket, err := creator.CreateTicket(r.Context(), tickets.CreateInput{
			EventID:    eventID,
			EventTitle: title,
			FullName:   req.FullName,
			Email:      req.Email,
			Phone:      req.Phone,
			Quantity:   req.Quantity,
			EventDate:  req.EventDate,
		})
		if err != nil {
			log.Error("failed to create ticket", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create ticket"))
			return
		}

		log.Info("ticket booked successfully", slog.String("ticket_id", ticket.ID))

		responseOK(w, r, ticket)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ticket models.Ticket) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, TicketResponse{
		Response: response.OK(),
		Ticket:   &ticket,
	})
}
