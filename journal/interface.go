package journal

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for an unknown entry id
var ErrNotFound = errors.New("journal entry not found")

// Repository stores finished deals
type Repository interface {
	// Save inserts the entry or replaces the one with the same id
	Save(ctx context.Context, e *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)

	// Recent returns up to limit entries, latest end time first
	Recent(ctx context.Context, limit int) ([]*Entry, error)
	Summary(ctx context.Context) (Summary, error)

	// Close releases any resources used by the repository
	Close() error
}
