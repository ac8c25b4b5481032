package storage

import "errors"

var (
	ErrNotFound = errors.New("blob not found")
)
