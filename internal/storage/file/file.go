package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"eventTicketing/internal/storage"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Storage keeps every key in its own JSON file under Dir.
type Storage struct {
	Dir string
}

func New(dir string) (*Storage, error) {
	const op = "storage.file.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{Dir: dir}, nil
}

func (s *Storage) path(key string) string {
	return filepath.Join(s.Dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	const op = "storage.file.Get"

	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blob, nil
}

// Set overwrites the file in place. A failed write can leave it truncated.
func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	const op = "storage.file.Set"

	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return nil
}
