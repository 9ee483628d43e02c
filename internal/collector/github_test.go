package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
	apperrors "github.com/kurihiro0119/github-user-finder/internal/errors"
)

const octocatJSON = `{
	"login": "octocat",
	"html_url": "https://github.com/octocat",
	"avatar_url": "https://avatars.example/octocat",
	"followers": 5,
	"following": 2,
	"public_gists": 1,
	"public_repos": 3,
	"bio": null
}`

const octocatReposJSON = `[
	{"name": "newest", "html_url": "https://github.com/octocat/newest", "stargazers_count": 3, "watchers_count": 3, "forks_count": 1},
	{"name": "older", "html_url": "https://github.com/octocat/older", "stargazers_count": 10, "watchers_count": 9, "forks_count": 4}
]`

func newTestCollector(t *testing.T, handler http.Handler) Collector {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewGitHubCollector("test-token", server.URL)
	require.NoError(t, err)
	return c
}

func TestGetUser(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(octocatJSON))
	})
	c := newTestCollector(t, mux)

	profile, err := c.GetUser(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, &domain.UserProfile{
		Login:       "octocat",
		HTMLURL:     "https://github.com/octocat",
		AvatarURL:   "https://avatars.example/octocat",
		Followers:   5,
		Following:   2,
		PublicGists: 1,
		PublicRepos: 3,
	}, profile)
}

func TestGetUser_BioAbsentAndNullAreEqual(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/null-bio", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login":"null-bio","bio":null}`))
	})
	mux.HandleFunc("/users/no-bio", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login":"no-bio"}`))
	})
	mux.HandleFunc("/users/with-bio", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login":"with-bio","bio":"Gopher"}`))
	})
	c := newTestCollector(t, mux)
	ctx := context.Background()

	nullBio, err := c.GetUser(ctx, "null-bio")
	require.NoError(t, err)
	noBio, err := c.GetUser(ctx, "no-bio")
	require.NoError(t, err)
	withBio, err := c.GetUser(ctx, "with-bio")
	require.NoError(t, err)

	assert.Nil(t, nullBio.Bio)
	assert.Nil(t, noBio.Bio)
	assert.Equal(t, nullBio.BioText(), noBio.BioText())
	assert.Equal(t, "Gopher", withBio.BioText())
}

func TestGetUser_Errors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})
	mux.HandleFunc("/users/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/users/garbled", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login": `))
	})
	c := newTestCollector(t, mux)

	for _, name := range []domain.Query{"ghost", "broken", "garbled"} {
		t.Run(name.String(), func(t *testing.T) {
			profile, err := c.GetUser(context.Background(), name)
			require.Error(t, err)
			assert.Nil(t, profile)
			assert.True(t, apperrors.IsHTTP(err), "expected HTTP error, got %v", err)
		})
	}
}

func TestGetUser_EmptyQueryMakesNoRequest(t *testing.T) {
	var calls int32
	c := newTestCollector(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	_, err := c.GetUser(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
	_, err = c.GetRecentRepositories(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestGetRecentRepositories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "created", r.URL.Query().Get("sort"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(octocatReposJSON))
	})
	c := newTestCollector(t, mux)

	repos, err := c.GetRecentRepositories(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, domain.RepositoryList{
		{Name: "newest", HTMLURL: "https://github.com/octocat/newest", Stars: 3, Watchers: 3, Forks: 1},
		{Name: "older", HTMLURL: "https://github.com/octocat/older", Stars: 10, Watchers: 9, Forks: 4},
	}, repos)
}

func TestGetRecentRepositories_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	c := newTestCollector(t, mux)

	repos, err := c.GetRecentRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestGetUser_EscapesUsername(t *testing.T) {
	var gotPath string
	c := newTestCollector(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.GetUser(context.Background(), "../orgs")
	require.Error(t, err)
	assert.Equal(t, "/users/..%2Forgs", gotPath)
}

func TestNewGitHubCollector_InvalidURL(t *testing.T) {
	_, err := NewGitHubCollector("t", "://bad")
	assert.Error(t, err)
}
