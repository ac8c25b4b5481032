package tickets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventTicketing/internal/lib/clock"
	"eventTicketing/internal/lib/logger/sl"
	"eventTicketing/internal/metrics"
	"eventTicketing/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrCreateFailed   = errors.New("failed to create ticket")
	ErrCheckInFailed  = errors.New("failed to check in ticket")
)

const (
	MessageValid       = "Valid ticket"
	MessageNotFound    = "Ticket not found"
	MessageAlreadyUsed = "Ticket already used"
)

type Repository interface {
	LoadAll(ctx context.Context) []models.Ticket
	SaveAll(ctx context.Context, tickets []models.Ticket) error
}

type Service struct {
	log   *slog.Logger
	repo  Repository
	clock clock.Clock
	newID func(now time.Time) string

	// mu serialises load-modify-save cycles within this process only.
	mu sync.Mutex
}

type Option func(*Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithIDGenerator(fn func(now time.Time) string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func NewService(log *slog.Logger, repo Repository, opts ...Option) *Service {
	s := &Service{
		log:   log.With(slog.String("component", "tickets/service")),
		repo:  repo,
		clock: clock.NewSystem(),
		newID: NewTicketID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	EventID    string
	EventTitle string
	FullName   string
	Email      string
	Phone      string
	Quantity   int
	EventDate  *time.Time
}

func (s *Service) CreateTicket(ctx context.Context, in CreateInput) (models.Ticket, error) {
	const op = "tickets.Service.CreateTicket"

	now := s.clock.Now()

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	ticket := models.Ticket{
		ID:          s.newID(now),
		EventID:     in.EventID,
		EventTitle:  in.EventTitle,
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		Quantity:    quantity,
		BookingDate: now,
		EventDate:   in.EventDate,
		Status:      models.StatusConfirmed,
		CheckedIn:   false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.LoadAll(ctx)
	all = append(all, ticket)

	if err := s.repo.SaveAll(ctx, all); err != nil {
		s.log.Error("failed to save new ticket", slog.String("op", op), sl.Err(err))
		return models.Ticket{}, fmt.Errorf("%s: %w: %w", op, ErrCreateFailed, err)
	}

	metrics.TicketCreated()

	s.log.Info("ticket created",
		slog.String("ticket_id", ticket.ID),
		slog.String("event_id", ticket.EventID),
		slog.Int("quantity", ticket.Quantity),
	)

	return ticket, nil
}

// GetTicketByID returns the first ticket with the id; absence is not an error.
func (s *Service) GetTicketByID(ctx context.Context, id string) (models.Ticket, bool) {
	for _, t := range s.repo.LoadAll(ctx) {
		if t.ID == id {
			return t, true
		}
	}
	return models.Ticket{}, false
}

func (s *Service) ValidateTicket(ctx context.Context, id string) models.Validation {
	ticket, ok := s.GetTicketByID(ctx, id)
	if !ok {
		return models.Validation{
			Valid:   false,
			Status:  models.ValidationNotFound,
			Message: MessageNotFound,
		}
	}

	if ticket.CheckedIn {
		return models.Validation{
			Valid:   false,
			Status:  models.ValidationAlreadyUsed,
			Message: MessageAlreadyUsed,
			Ticket:  &ticket,
		}
	}

	return models.Validation{
		Valid:   true,
		Status:  models.ValidationValid,
		Message: MessageValid,
		Ticket:  &ticket,
	}
}

// CheckInTicket marks the ticket as used and stamps checkInTime.
// It does not look at the current checkedIn flag: calling it twice
// overwrites checkInTime. Callers gate with ValidateTicket.
func (s *Service) CheckInTicket(ctx context.Context, id string) (models.Ticket, error) {
	const op = "tickets.Service.CheckInTicket"

	log := s.log.With(slog.String("op", op), slog.String("ticket_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.repo.LoadAll(ctx)

	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}

	if idx == -1 {
		metrics.CheckIn("not_found")
		return models.Ticket{}, fmt.Errorf("%s: %w", op, ErrTicketNotFound)
	}

	now := s.clock.Now()
	all[idx].CheckedIn = true
	all[idx].CheckInTime = &now

	if err := s.repo.SaveAll(ctx, all); err != nil {
		metrics.CheckIn("error")
		log.Error("failed to save check-in", sl.Err(err))
		return models.Ticket{}, fmt.Errorf("%s: %w: %w", op, ErrCheckInFailed, err)
	}

	metrics.CheckIn("success")
	log.Info("ticket checked in")

	return all[idx], nil
}

func (s *Service) GetAllTickets(ctx context.Context) []models.Ticket {
	return s.repo.LoadAll(ctx)
}

func (s *Service) GetTicketsByEventID(ctx context.Context, eventID string) []models.Ticket {
	out := []models.Ticket{}
	for _, t := range s.repo.LoadAll(ctx) {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) GetCheckInStats(ctx context.Context) models.CheckInStats {
	all := s.repo.LoadAll(ctx)

	stats := models.CheckInStats{TotalTickets: len(all)}
	for _, t := range all {
		if t.CheckedIn {
			stats.CheckedIn++
		}
	}

	if stats.TotalTickets > 0 {
		stats.PercentageCheckedIn = int(decimal.NewFromInt(int64(stats.CheckedIn)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(stats.TotalTickets))).
			Round(0).
			IntPart())
	}

	return stats
}

// RefreshMetrics publishes the current ticket counts as gauges.
func (s *Service) RefreshMetrics(ctx context.Context) models.CheckInStats {
	stats := s.GetCheckInStats(ctx)
	metrics.SetTicketCounts(stats.TotalTickets, stats.CheckedIn)
	return stats
}
