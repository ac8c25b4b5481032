package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"eventTicketing/internal/lib/logger/sl"
	"eventTicketing/internal/models"
	"eventTicketing/internal/storage"
)

// Blob is a single-key byte store. Backends live under internal/storage.
type Blob interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store persists the whole ticket collection as one JSON array under one key.
// It has no concurrency control of its own.
type Store struct {
	log  *slog.Logger
	blob Blob
	key  string
}

func NewStore(log *slog.Logger, blob Blob, key string) *Store {
	return &Store{
		log:  log.With(slog.String("component", "tickets/store"), slog.String("key", key)),
		blob: blob,
		key:  key,
	}
}

// LoadAll never fails: a missing key, a read error or a corrupt blob all
// yield an empty collection.
func (s *Store) LoadAll(ctx context.Context) []models.Ticket {
	const op = "tickets.Store.LoadAll"

	log := s.log.With(slog.String("op", op))

	raw, err := s.blob.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to read tickets", sl.Err(err))
		}
		return []models.Ticket{}
	}

	var tickets []models.Ticket
	if err = json.Unmarshal(raw, &tickets); err != nil {
		log.Error("failed to parse tickets", sl.Err(err))
		return []models.Ticket{}
	}

	if tickets == nil {
		return []models.Ticket{}
	}

	return tickets
}

func (s *Store) SaveAll(ctx context.Context, tickets []models.Ticket) error {
	const op = "tickets.Store.SaveAll"

	if tickets == nil {
		tickets = []models.Ticket{}
	}

	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = s.blob.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
