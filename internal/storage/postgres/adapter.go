package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
	"github.com/kurihiro0119/github-user-finder/internal/storage"
)

// postgresStorage implements the Storage interface for PostgreSQL
type postgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage creates a new PostgreSQL storage instance
func NewPostgresStorage(connStr string) (storage.Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &postgresStorage{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Migrate runs database migrations
func (s *postgresStorage) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS lookups (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		succeeded BOOLEAN NOT NULL,
		login TEXT NOT NULL DEFAULT '',
		repo_count INTEGER NOT NULL DEFAULT 0,
		requested_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_lookups_requested_at ON lookups(requested_at);
	CREATE INDEX IF NOT EXISTS idx_lookups_query ON lookups(query);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveLookup stores one lookup outcome
func (s *postgresStorage) SaveLookup(ctx context.Context, record *domain.LookupRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookups (id, query, succeeded, login, repo_count, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, record.ID, record.Query, record.Succeeded, record.Login, record.RepoCount, record.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to save lookup %s: %w", record.ID, err)
	}
	return nil
}

// GetRecentLookups returns the most recent lookups, newest first
func (s *postgresStorage) GetRecentLookups(ctx context.Context, limit int) ([]*domain.LookupRecord, error) {
	if limit <= 0 {
		limit = storage.DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, succeeded, login, repo_count, requested_at
		FROM lookups
		ORDER BY requested_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var records []*domain.LookupRecord
	for rows.Next() {
		rec := &domain.LookupRecord{}
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.Succeeded, &rec.Login, &rec.RepoCount, &rec.RequestedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close closes the database connection
func (s *postgresStorage) Close() error {
	return s.db.Close()
}
