// Package render turns fetched GitHub data into HTML fragments and renders
// the finder page around them.
package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
)

// Form is the state of the search form.
type Form struct {
	Query       string
	ButtonLabel string
}

// Panel is a result container. Content is only shown once Hidden is false.
type Panel struct {
	Hidden  bool
	Content template.HTML
}

// Notification is a transient message shown above the form.
type Notification struct {
	Level   string
	Message string
}

// PageData is everything the page template needs.
type PageData struct {
	Form          Form
	User          Panel
	Repos         Panel
	Notifications []Notification
}

// Renderer renders user and repository fragments and the full page.
type Renderer struct {
	user  *template.Template
	repos *template.Template
	page  *template.Template
}

// NewRenderer creates a Renderer with the built-in templates.
func NewRenderer() *Renderer {
	return &Renderer{
		user:  template.Must(template.New("user").Parse(userTemplate)),
		repos: template.Must(template.New("repos").Parse(reposTemplate)),
		page:  template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// RenderUser renders the profile fragment. A missing bio renders as an
// empty block in the same position.
func (r *Renderer) RenderUser(profile *domain.UserProfile) (template.HTML, error) {
	return execute(r.user, profile)
}

// RenderRepos renders the repository fragment in the order given. An empty
// list renders as empty content.
func (r *Renderer) RenderRepos(repos domain.RepositoryList) (template.HTML, error) {
	if len(repos) == 0 {
		return "", nil
	}
	return execute(r.repos, repos)
}

// RenderPage writes the complete finder page.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	return r.page.Execute(w, data)
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	// Output of html/template is already escaped.
	return template.HTML(buf.String()), nil
}
