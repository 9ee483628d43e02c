package storage

import (
	"context"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
)

// DefaultHistoryLimit is the number of lookups returned when no limit is given.
const DefaultHistoryLimit = 20

// Storage is the abstract interface for the lookup history
type Storage interface {
	// SaveLookup stores one lookup outcome
	SaveLookup(ctx context.Context, record *domain.LookupRecord) error

	// GetRecentLookups returns the most recent lookups, newest first
	GetRecentLookups(ctx context.Context, limit int) ([]*domain.LookupRecord, error)

	// Migration
	Migrate(ctx context.Context) error

	// Connection management
	Close() error
}
