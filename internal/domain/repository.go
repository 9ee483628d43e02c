package domain

// RepositoryEntry is one repository of a user as shown in the results list
type RepositoryEntry struct {
	Name     string `json:"name"`
	HTMLURL  string `json:"html_url"`
	Stars    int    `json:"stargazers_count"`
	Watchers int    `json:"watchers_count"`
	Forks    int    `json:"forks_count"`
}

// RecentRepositoriesLimit caps the repository list to the first page
// of the most recently created repositories.
const RecentRepositoriesLimit = 10

// RepositoryList is ordered newest first, as returned by the API.
type RepositoryList []RepositoryEntry
