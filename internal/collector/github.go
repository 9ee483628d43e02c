package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v55/github"
	"golang.org/x/oauth2"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
	apperrors "github.com/kurihiro0119/github-user-finder/internal/errors"
)

// githubCollector implements Collector using GitHub API
type githubCollector struct {
	client *github.Client
}

// NewGitHubCollector creates a GitHub collector bound to baseURL. Every
// request carries the token as a bearer credential. An empty baseURL
// selects the public API.
func NewGitHubCollector(token, baseURL string) (Collector, error) {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}

	return &githubCollector{client: client}, nil
}

// GetUser retrieves the public profile of a user
func (c *githubCollector) GetUser(ctx context.Context, q domain.Query) (*domain.UserProfile, error) {
	if q == "" {
		return nil, apperrors.NewValidationError("query must not be empty")
	}

	user, _, err := c.client.Users.Get(ctx, url.PathEscape(q.String()))
	if err != nil {
		return nil, apperrors.NewHTTPError(fmt.Sprintf("failed to fetch user %s", q), err)
	}

	return &domain.UserProfile{
		Login:       user.GetLogin(),
		HTMLURL:     user.GetHTMLURL(),
		AvatarURL:   user.GetAvatarURL(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		PublicGists: user.GetPublicGists(),
		PublicRepos: user.GetPublicRepos(),
		Bio:         user.Bio,
	}, nil
}

// GetRecentRepositories retrieves the first page of a user's repositories,
// newest first.
func (c *githubCollector) GetRecentRepositories(ctx context.Context, q domain.Query) (domain.RepositoryList, error) {
	if q == "" {
		return nil, apperrors.NewValidationError("query must not be empty")
	}

	opts := &github.RepositoryListOptions{
		Sort:        "created",
		ListOptions: github.ListOptions{PerPage: domain.RecentRepositoriesLimit},
	}

	repos, _, err := c.client.Repositories.List(ctx, url.PathEscape(q.String()), opts)
	if err != nil {
		return nil, apperrors.NewHTTPError(fmt.Sprintf("failed to list repositories for %s", q), err)
	}

	list := make(domain.RepositoryList, 0, len(repos))
	for _, repo := range repos {
		list = append(list, domain.RepositoryEntry{
			Name:     repo.GetName(),
			HTMLURL:  repo.GetHTMLURL(),
			Stars:    repo.GetStargazersCount(),
			Watchers: repo.GetWatchersCount(),
			Forks:    repo.GetForksCount(),
		})
	}

	return list, nil
}
