package widget

import (
	"html/template"
	"sync"

	"github.com/kurihiro0119/github-user-finder/internal/render"
)

const (
	ButtonLabelIdle    = "Submit"
	ButtonLabelLoading = "Loading..."
)

// View holds the elements a Controller writes to: the search form and the
// two result containers. Both containers start hidden.
type View struct {
	mu    sync.Mutex
	form  render.Form
	user  render.Panel
	repos render.Panel
}

// NewView creates a View in its initial state.
func NewView() *View {
	return &View{
		form:  render.Form{ButtonLabel: ButtonLabelIdle},
		user:  render.Panel{Hidden: true},
		repos: render.Panel{Hidden: true},
	}
}

// SetQuery sets the text of the query input.
func (v *View) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form.Query = q
}

// Snapshot returns a copy of the current view state.
func (v *View) Snapshot() render.PageData {
	v.mu.Lock()
	defer v.mu.Unlock()
	return render.PageData{
		Form:  v.form,
		User:  v.user,
		Repos: v.repos,
	}
}

func (v *View) setButtonLabel(label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form.ButtonLabel = label
}

func (v *View) showResults(user, repos template.HTML) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.user = render.Panel{Content: user}
	v.repos = render.Panel{Content: repos}
	v.form.ButtonLabel = ButtonLabelIdle
}

func (v *View) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = render.Form{ButtonLabel: ButtonLabelIdle}
}
