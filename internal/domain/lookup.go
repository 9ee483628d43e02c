package domain

import "time"

// Lookup is the joined result of a profile fetch and a repository fetch
// for the same query. It only exists when both fetches succeeded.
type Lookup struct {
	Query        Query          `json:"query"`
	Profile      *UserProfile   `json:"user"`
	Repositories RepositoryList `json:"repos"`
}

// LookupRecord is a history entry for one completed lookup
type LookupRecord struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Succeeded   bool      `json:"succeeded"`
	Login       string    `json:"login,omitempty"`
	RepoCount   int       `json:"repo_count"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewLookupRecord summarizes a lookup outcome. lookup is nil on failure.
func NewLookupRecord(id string, q Query, lookup *Lookup, requestedAt time.Time) *LookupRecord {
	rec := &LookupRecord{
		ID:          id,
		Query:       q.String(),
		RequestedAt: requestedAt,
	}
	if lookup != nil {
		rec.Succeeded = true
		rec.RepoCount = len(lookup.Repositories)
		if lookup.Profile != nil {
			rec.Login = lookup.Profile.Login
		}
	}
	return rec
}
