// Package widget implements the user finder controller: it validates the
// submitted username, fetches profile and repositories concurrently and
// writes the rendered fragments into a View.
package widget

import (
	"context"
	"errors"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/kurihiro0119/github-user-finder/internal/collector"
	"github.com/kurihiro0119/github-user-finder/internal/domain"
	apperrors "github.com/kurihiro0119/github-user-finder/internal/errors"
	"github.com/kurihiro0119/github-user-finder/internal/render"
)

const (
	MessageEmptyQuery   = "Please fill the field."
	MessageUserNotFound = "User not found"
)

// ErrSuperseded is returned by Submit when a newer submit started before
// this one completed. The response was discarded.
var ErrSuperseded = errors.New("lookup superseded by a newer submit")

// State is the controller state
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Recorder stores lookup outcomes
type Recorder interface {
	SaveLookup(ctx context.Context, record *domain.LookupRecord) error
}

// Option configures a Controller
type Option func(*Controller)

// WithRecorder records every completed lookup.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithRenderer replaces the default renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// Controller wires submits to validation, the concurrent fetch and
// rendering. Overlapping submits are allowed; only the most recent one
// may write to the view, older responses are dropped.
type Controller struct {
	client   collector.Collector
	view     *View
	notifier Notifier
	renderer *render.Renderer
	recorder Recorder
	logger   *log.Logger
	now      func() time.Time

	mu     sync.Mutex
	latest string
	state  State
}

// NewController creates a controller writing to view and fetching through client.
func NewController(client collector.Collector, view *View, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		client:   client,
		view:     view,
		notifier: notifier,
		renderer: render.NewRenderer(),
		logger:   log.New(io.Discard),
		now:      time.Now,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the view the controller writes to.
func (c *Controller) View() *View {
	return c.view
}

// Submit handles one form submit with the raw input value.
//
// Empty input produces a warning and a validation error without touching
// the network or the button label. A failed fetch produces a warning,
// clears the input and writes no fragment. On success both fragments are
// written and both containers become visible.
func (c *Controller) Submit(ctx context.Context, raw string) (*domain.Lookup, error) {
	q, err := domain.ParseQuery(raw)
	if err != nil {
		c.notifier.Notify(LevelWarning, MessageEmptyQuery)
		return nil, err
	}

	id := uuid.NewString()
	c.mu.Lock()
	c.latest = id
	c.state = StateSubmitting
	c.view.setButtonLabel(ButtonLabelLoading)
	c.mu.Unlock()

	requestedAt := c.now()
	c.logger.Debug("lookup started", "request", id, "query", q)

	lookup, err := collector.FetchLookup(ctx, c.client, q)

	var userHTML, reposHTML template.HTML
	if err == nil {
		userHTML, reposHTML, err = c.renderLookup(lookup)
	}

	c.mu.Lock()
	if c.latest != id {
		c.mu.Unlock()
		c.logger.Debug("discarding superseded lookup", "request", id, "query", q)
		return nil, ErrSuperseded
	}
	c.state = StateIdle
	if err != nil {
		c.view.reset()
	} else {
		c.view.showResults(userHTML, reposHTML)
	}
	c.mu.Unlock()

	c.record(ctx, id, q, lookup, err, requestedAt)

	if err != nil {
		c.logger.Warn("lookup failed", "request", id, "query", q, "err", err)
		c.notifier.Notify(LevelWarning, MessageUserNotFound)
		return nil, err
	}

	c.logger.Debug("lookup completed", "request", id, "query", q, "repos", len(lookup.Repositories))
	return lookup, nil
}

// renderLookup renders both fragments up front so a template failure
// turns into a failed lookup instead of a half-written view.
func (c *Controller) renderLookup(lookup *domain.Lookup) (template.HTML, template.HTML, error) {
	userHTML, err := c.renderer.RenderUser(lookup.Profile)
	if err != nil {
		return "", "", apperrors.NewInternalError("failed to render user", err)
	}
	reposHTML, err := c.renderer.RenderRepos(lookup.Repositories)
	if err != nil {
		return "", "", apperrors.NewInternalError("failed to render repositories", err)
	}
	return userHTML, reposHTML, nil
}

func (c *Controller) record(ctx context.Context, id string, q domain.Query, lookup *domain.Lookup, err error, requestedAt time.Time) {
	if c.recorder == nil {
		return
	}
	if err != nil {
		lookup = nil
	}
	rec := domain.NewLookupRecord(id, q, lookup, requestedAt)
	if saveErr := c.recorder.SaveLookup(context.WithoutCancel(ctx), rec); saveErr != nil {
		c.logger.Error("failed to record lookup", "request", id, "err", saveErr)
	}
}
