package domain

import (
	"strings"

	apperrors "github.com/kurihiro0119/github-user-finder/internal/errors"
)

// Query is a trimmed, non-empty GitHub username
type Query string

// ParseQuery trims raw form input and rejects it when nothing is left.
func ParseQuery(raw string) (Query, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", apperrors.NewValidationError("query must not be empty")
	}
	return Query(q), nil
}

func (q Query) String() string {
	return string(q)
}
