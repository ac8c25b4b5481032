package router

import (
	"log/slog"
	"net/http"

	"eventTicketing/internal/auth"
	"eventTicketing/internal/catalog"
	"eventTicketing/internal/http-server/handlers/admin/login"
	"eventTicketing/internal/http-server/handlers/admin/logout"
	"eventTicketing/internal/http-server/handlers/event/getAllEvents"
	"eventTicketing/internal/http-server/handlers/event/getEventInfo"
	"eventTicketing/internal/http-server/handlers/ticket/checkInTicket"
	"eventTicketing/internal/http-server/handlers/ticket/createTicket"
	"eventTicketing/internal/http-server/handlers/ticket/getCheckInStats"
	"eventTicketing/internal/http-server/handlers/ticket/getTicket"
	"eventTicketing/internal/http-server/handlers/ticket/getTicketQR"
	"eventTicketing/internal/http-server/handlers/ticket/getTickets"
	"eventTicketing/internal/http-server/handlers/ticket/scanTicket"
	"eventTicketing/internal/http-server/handlers/ticket/validateTicket"
	"eventTicketing/internal/http-server/middleware/adminauth"
	"eventTicketing/internal/http-server/middleware/mwlogger"
	"eventTicketing/internal/lib/clock"
	"eventTicketing/internal/tickets"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Tickets  *tickets.Service
	Catalog  *catalog.Catalog
	Sessions *auth.Sessions
	Clock    clock.Clock
}

func New(log *slog.Logger, d Deps) http.Handler {
	if d.Clock == nil {
		d.Clock = clock.NewSystem()
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/events", getAllEvents.New(log, d.Catalog))
	router.Get("/events/{id}", getEventInfo.New(log, d.Catalog))
	router.Post("/events/{id}/tickets", createTicket.New(log, d.Tickets, d.Catalog))

	router.Get("/tickets/{id}", getTicket.New(log, d.Tickets))
	router.Get("/tickets/{id}/qr", getTicketQR.New(log, d.Tickets, d.Clock))

	router.Post("/admin/login", login.New(log, d.Sessions))

	router.Route("/admin", func(r chi.Router) {
		r.Use(adminauth.New(log, d.Sessions))

		r.Post("/logout", logout.New(log, d.Sessions))
		r.Get("/tickets", getTickets.New(log, d.Tickets))
		r.Get("/stats", getCheckInStats.New(log, d.Tickets))
		r.Get("/tickets/{id}/validate", validateTicket.New(log, d.Tickets))
		r.Post("/tickets/{id}/checkin", checkInTicket.New(log, d.Tickets))
		r.Post("/scan", scanTicket.New(log, d.Tickets))
	})

	return router
}
