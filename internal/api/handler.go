package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/kurihiro0119/github-user-finder/internal/collector"
	"github.com/kurihiro0119/github-user-finder/internal/domain"
	apperrors "github.com/kurihiro0119/github-user-finder/internal/errors"
	"github.com/kurihiro0119/github-user-finder/internal/render"
	"github.com/kurihiro0119/github-user-finder/internal/storage"
	"github.com/kurihiro0119/github-user-finder/internal/widget"
)

// Handler handles page and API requests
type Handler struct {
	client   collector.Collector
	store    storage.Storage
	renderer *render.Renderer
	logger   *log.Logger
}

// NewHandler creates a new handler. store may be nil when lookup history
// is disabled.
func NewHandler(client collector.Collector, store storage.Storage, logger *log.Logger) *Handler {
	return &Handler{
		client:   client,
		store:    store,
		renderer: render.NewRenderer(),
		logger:   logger,
	}
}

// newController creates a controller for a single request. Every request
// gets its own view, so concurrent visitors never share state.
func (h *Handler) newController(notifier widget.Notifier) *widget.Controller {
	opts := []widget.Option{
		widget.WithRenderer(h.renderer),
		widget.WithLogger(h.logger),
	}
	if h.store != nil {
		opts = append(opts, widget.WithRecorder(h.store))
	}
	return widget.NewController(h.client, widget.NewView(), notifier, opts...)
}

// Index renders the empty finder page
// GET /
func (h *Handler) Index(c *gin.Context) {
	h.renderPage(c, widget.NewView().Snapshot())
}

// Submit handles the finder form
// POST /
func (h *Handler) Submit(c *gin.Context) {
	raw := c.PostForm("query")

	notifier := &widget.FlashNotifier{}
	ctrl := h.newController(notifier)
	ctrl.View().SetQuery(raw)

	// Failures are reported through the notifier.
	_, _ = ctrl.Submit(c.Request.Context(), raw)

	data := ctrl.View().Snapshot()
	data.Notifications = notifier.Messages()
	h.renderPage(c, data)
}

// GetUser returns the profile and recent repositories of a user
// GET /api/v1/users/:user
func (h *Handler) GetUser(c *gin.Context) {
	ctrl := h.newController(widget.NotifierFunc(func(widget.Level, string) {}))

	lookup, err := ctrl.Submit(c.Request.Context(), c.Param("user"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": lookup,
	})
}

// GetHistory returns the most recent lookups
// GET /api/v1/history
func (h *Handler) GetHistory(c *gin.Context) {
	if h.store == nil {
		respondError(c, apperrors.NewNotFoundError("lookup history"))
		return
	}

	limit := parseIntQuery(c, "limit", storage.DefaultHistoryLimit)
	records, err := h.store.GetRecentLookups(c.Request.Context(), limit)
	if err != nil {
		respondError(c, apperrors.NewInternalError("failed to read lookup history", err))
		return
	}
	if records == nil {
		records = []*domain.LookupRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": records,
	})
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handler) renderPage(c *gin.Context, data render.PageData) {
	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, data); err != nil {
		h.logger.Error("failed to render page", "err", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// parseIntQuery parses an integer query parameter with a default value
func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, errorBody(apperrors.ErrCodeValidation, widget.MessageEmptyQuery))
	case apperrors.IsHTTP(err):
		c.JSON(http.StatusNotFound, errorBody(apperrors.ErrCodeHTTP, widget.MessageUserNotFound))
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, errorBody(apperrors.ErrCodeNotFound, appMessage(err)))
	default:
		c.JSON(http.StatusInternalServerError, errorBody(apperrors.ErrCodeInternal, appMessage(err)))
	}
}

func errorBody(code apperrors.ErrCode, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

func appMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
