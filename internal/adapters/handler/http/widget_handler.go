package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/contributions"
	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/render"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/engine"
)

const maxPayloadBytes = 2 << 20

type HeatmapProvider interface {
	GetHeatmap(ctx context.Context, input domain.HeatmapInput) (*domain.Heatmap, error)
	BuildHeatmapWithTotal(series []domain.DayRecord, total int) (*domain.Heatmap, error)
}

type ProgressProvider interface {
	Snapshot(timezone string) (*domain.ProgressReport, error)
}

type QuoteProvider interface {
	Today(timezone string) (*domain.Quote, error)
}

type RefreshQueue interface {
	Enqueue(userID, timezone string) bool
}

type WidgetHandler struct {
	heatmaps HeatmapProvider
	progress ProgressProvider
	quotes   QuoteProvider
	refresh  RefreshQueue
	cfg      domain.EngineConfig
}

func NewWidgetHandler(heatmaps HeatmapProvider, progress ProgressProvider, quotes QuoteProvider, refresh RefreshQueue, cfg domain.EngineConfig) *WidgetHandler {
	return &WidgetHandler{
		heatmaps: heatmaps,
		progress: progress,
		quotes:   quotes,
		refresh:  refresh,
		cfg:      cfg,
	}
}

func (h *WidgetHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	widgets := router.Group("/widgets")
	{
		widgets.GET("/progress", h.GetProgress)
		widgets.GET("/quote", h.GetQuote)
	}
}

func (h *WidgetHandler) RegisterRoutes(router *gin.RouterGroup) {
	widgets := router.Group("/widgets")
	{
		widgets.GET("/heatmap", h.GetHeatmap)
		widgets.POST("/heatmap", h.BuildHeatmap)
		widgets.POST("/heatmap/refresh", h.RefreshHeatmap)
	}
}

// GetProgress godoc
// @Summary Day, week and year progress
// @Tags widgets
// @Produce json
// @Param tz query string false "IANA timezone, default UTC"
// @Success 200 {object} domain.ProgressReport
// @Failure 400 {object} map[string]string
// @Router /widgets/progress [get]
func (h *WidgetHandler) GetProgress(c *gin.Context) {
	report, err := h.progress.Snapshot(c.Query("tz"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetQuote godoc
// @Summary Phrase of the day
// @Tags widgets
// @Produce json
// @Param tz query string false "IANA timezone, default UTC"
// @Success 200 {object} domain.Quote
// @Router /widgets/quote [get]
func (h *WidgetHandler) GetQuote(c *gin.Context) {
	quote, err := h.quotes.Today(c.Query("tz"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetHeatmap godoc
// @Summary Activity heatmap for the authenticated user
// @Tags widgets
// @Produce json
// @Produce plain
// @Security BearerAuth
// @Param end_date query string false "Last day, YYYY-MM-DD"
// @Param tz query string false "IANA timezone used when end_date is empty"
// @Param format query string false "json or text"
// @Success 200 {object} domain.Heatmap
// @Failure 404 {object} map[string]string
// @Router /widgets/heatmap [get]
func (h *WidgetHandler) GetHeatmap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	heatmap, err := h.heatmaps.GetHeatmap(c.Request.Context(), domain.HeatmapInput{
		UserID:   userID,
		EndDate:  c.Query("end_date"),
		Timezone: c.Query("tz"),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	h.respondHeatmap(c, heatmap)
}

// BuildHeatmap godoc
// @Summary Heatmap from a contribution calendar payload
// @Description Accepts the aggregator shape, the GraphQL calendar shape or a bare [{date, count}] series.
// @Tags widgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Heatmap
// @Failure 400 {object} map[string]string
// @Router /widgets/heatmap [post]
func (h *WidgetHandler) BuildHeatmap(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable payload"})
		return
	}

	payload, err := contributions.Decode(body)
	if err != nil {
		handleError(c, err)
		return
	}

	series, total, err := payload.Normalize()
	if err != nil {
		handleError(c, err)
		return
	}

	heatmap, err := h.heatmaps.BuildHeatmapWithTotal(series, total)
	if err != nil {
		handleError(c, err)
		return
	}

	h.respondHeatmap(c, heatmap)
}

// RefreshHeatmap godoc
// @Summary Queue a cache refresh for the authenticated user
// @Tags widgets
// @Security BearerAuth
// @Param tz query string false "IANA timezone of the window to rebuild"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /widgets/heatmap/refresh [post]
func (h *WidgetHandler) RefreshHeatmap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	tz := c.Query("tz")
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			handleError(c, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, tz))
			return
		}
	}

	if h.refresh == nil || !h.refresh.Enqueue(userID, tz) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "refresh queue unavailable, retry later"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func (h *WidgetHandler) respondHeatmap(c *gin.Context, heatmap *domain.Heatmap) {
	if c.Query("format") != "text" {
		c.JSON(http.StatusOK, heatmap)
		return
	}

	term := render.NewTerminal(render.TerminalOptions{CellPitch: h.cfg.CellSize + h.cfg.CellGap})
	engine.DrawHeatmap(term, heatmap.Weeks, h.cfg.CellSize, h.cfg.CellGap)
	c.String(http.StatusOK, term.String()+"\n")
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})

	case errors.Is(err, domain.ErrNoActivity):
		c.JSON(http.StatusNotFound, gin.H{"error": "no activity data available"})

	case errors.Is(err, domain.ErrSourceUnavailable):
		log.Printf("[ERROR] Request %s %s: activity source unavailable: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "activity source unavailable"})

	default:
		log.Printf("[ERROR] Request %s %s failed (id=%s): %v",
			c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
