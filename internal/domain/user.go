package domain

// UserProfile represents a GitHub user profile
type UserProfile struct {
	Login       string  `json:"login"`
	HTMLURL     string  `json:"html_url"`
	AvatarURL   string  `json:"avatar_url"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	PublicGists int     `json:"public_gists"`
	PublicRepos int     `json:"public_repos"`
	Bio         *string `json:"bio"`
}

// BioText returns the biography, or an empty string when the user has none.
func (u *UserProfile) BioText() string {
	if u == nil || u.Bio == nil {
		return ""
	}
	return *u.Bio
}
