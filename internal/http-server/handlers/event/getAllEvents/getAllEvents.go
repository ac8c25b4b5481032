package getAllEvents

import (
	"log/slog"
	"net/http"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	All() []models.Event
	Featured() []models.Event
}

// New lists the catalog. ?featured=true narrows it to featured events.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		var events []models.Event
		if r.URL.Query().Get("featured") == "true" {
			events = eventsGetter.Featured()
		} else {
			events = eventsGetter.All()
		}

		if events == nil {
			events = []models.Event{}
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
