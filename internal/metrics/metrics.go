package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ScanValid         = "valid"
	ScanNotFound      = "not_found"
	ScanAlreadyUsed   = "already_used"
	ScanInvalidFormat = "invalid_format"
)

var (
	ticketsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_created_total",
			Help: "Total tickets issued",
		},
	)

	ticketCheckIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_checkins_total",
			Help: "Total check-in attempts by result",
		},
		[]string{"result"},
	)

	ticketScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_scans_total",
			Help: "Total scanned QR codes by outcome",
		},
		[]string{"outcome"},
	)

	ticketsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tickets_total",
			Help: "Current number of stored tickets",
		},
	)

	ticketsCheckedIn = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tickets_checked_in",
			Help: "Current number of checked-in tickets",
		},
	)
)

func TicketCreated() {
	ticketsCreated.Inc()
}

func CheckIn(result string) {
	ticketCheckIns.WithLabelValues(result).Inc()
}

func Scan(outcome string) {
	ticketScans.WithLabelValues(outcome).Inc()
}

func SetTicketCounts(total, checkedIn int) {
	ticketsTotal.Set(float64(total))
	ticketsCheckedIn.Set(float64(checkedIn))
}
