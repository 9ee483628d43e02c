package collector

import (
	"context"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
)

// Collector defines the interface for fetching GitHub user data
type Collector interface {
	// GetUser retrieves the public profile of a user
	GetUser(ctx context.Context, q domain.Query) (*domain.UserProfile, error)

	// GetRecentRepositories retrieves the most recently created repositories of a user
	GetRecentRepositories(ctx context.Context, q domain.Query) (domain.RepositoryList, error)
}
