package getCheckInStats

import (
	"context"
	"log/slog"
	"net/http"

	"eventTicketing/internal/lib/api/response"
	"eventTicketing/internal/models"

	"github.com/go-chi/render"
)

type StatsResponse struct {
	response.Response
	Stats models.CheckInStats `json:"stats"`
}

type StatsGetter interface {
	GetCheckInStats(ctx context.Context) models.CheckInStats
}

func New(log *slog.Logger, getter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getCheckInStats.New"

		stats := getter.GetCheckInStats(r.Context())

		log.Info("check-in stats computed",
			slog.String("op", op),
			slog.Int("total", stats.TotalTickets),
			slog.Int("checked_in", stats.CheckedIn),
		)

		render.JSON(w, r, StatsResponse{
			Response: response.OK(),
			Stats:    stats,
		})
	}
}
