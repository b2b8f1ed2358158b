package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-widgets/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-widgets/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
	"github.com/comitanigiacomo/kanso-widgets/internal/core/services"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type fakeQueue struct {
	accept bool
	users  []string
	zones  []string
}

func (q *fakeQueue) Enqueue(userID, timezone string) bool {
	if !q.accept {
		return false
	}
	q.users = append(q.users, userID)
	q.zones = append(q.zones, timezone)
	return true
}

type unavailableHeatmaps struct{}

func (unavailableHeatmaps) GetHeatmap(ctx context.Context, input domain.HeatmapInput) (*domain.Heatmap, error) {
	return nil, fmt.Errorf("postgres activity source: %w", domain.ErrSourceUnavailable)
}

func (unavailableHeatmaps) BuildHeatmapWithTotal(series []domain.DayRecord, total int) (*domain.Heatmap, error) {
	return nil, fmt.Errorf("postgres activity source: %w", domain.ErrSourceUnavailable)
}

type brokenBody struct{}

func (brokenBody) Read(p []byte) (int, error) { return 0, errors.New("connection reset") }

type failingPinger struct{}

func (failingPinger) PingContext(ctx context.Context) error { return errors.New("connection refused") }

type testEnv struct {
	router *gin.Engine
	tokens *services.TokenService
	queue  *fakeQueue
}

func setupWidgetRouter(t *testing.T, db adapterHTTP.Pinger) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	source := repository.NewInMemoryActivitySource()
	for d := 8; d <= 10; d++ {
		require.NoError(t, source.Record("user-1", time.Date(2025, 3, d, 9, 0, 0, 0, time.UTC), 1))
	}

	cfg := domain.DefaultEngineConfig()
	clock := func() time.Time { return fixedNow }

	heatmaps := services.NewHeatmapService(source, cfg).WithClock(clock)
	progress := services.NewProgressService(cfg).WithClock(clock)
	quotes := services.NewQuoteService(nil).WithClock(clock)
	tokens := services.NewTokenService("handler-secret", "kanso-widgets", time.Hour)
	queue := &fakeQueue{accept: true}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		WidgetHandler:  adapterHTTP.NewWidgetHandler(heatmaps, progress, quotes, queue, cfg),
		TokenValidator: tokens,
		DB:             db,
		StartTime:      fixedNow,
	})

	return testEnv{router: router, tokens: tokens, queue: queue}
}

func (e testEnv) do(t *testing.T, method, target, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	if userID != "" {
		token, err := e.tokens.GenerateToken(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestWidgetHandler_Progress(t *testing.T) {
	env := setupWidgetRouter(t, nil)

	t.Run("Success: Public Snapshot", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/progress", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var report domain.ProgressReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, 2025, report.Year)
		assert.Equal(t, 50, report.Day.Percent)
		assert.Equal(t, 68, report.YearDays.Passed)
		assert.Len(t, report.Day.Ring, 50)
	})

	t.Run("Failure: Unknown Timezone", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/progress?tz=Mars/Olympus", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWidgetHandler_Quote(t *testing.T) {
	env := setupWidgetRouter(t, nil)

	w := env.do(t, http.MethodGet, "/api/v1/widgets/quote", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var quote domain.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 69, quote.DayOfYear)
	assert.Equal(t, "2025-03-10", quote.Date)
	assert.NotEmpty(t, quote.Text)
}

func TestWidgetHandler_GetHeatmap(t *testing.T) {
	env := setupWidgetRouter(t, nil)

	t.Run("Failure: Requires Token", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/heatmap", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Success: Returns Grid And Streak", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/heatmap", "user-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var heatmap domain.Heatmap
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &heatmap))
		assert.Equal(t, 3, heatmap.Total)
		assert.Equal(t, 3, heatmap.CurrentStreak)
		assert.Equal(t, "sunday", heatmap.WeekStart)
		assert.Len(t, heatmap.Weeks, domain.DefaultLookbackWeeks)

		last := heatmap.Weeks[len(heatmap.Weeks)-1]
		assert.Equal(t, "2025-03-09", last[0].Date)
		assert.Equal(t, domain.TierMax, last[1].Tier)
		assert.Equal(t, "", last[6].Date)
	})

	t.Run("Success: Earlier End Date Breaks Streak", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/heatmap?end_date=2025-03-11", "user-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var heatmap domain.Heatmap
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &heatmap))
		assert.Equal(t, 0, heatmap.CurrentStreak)
		assert.Equal(t, 3, heatmap.LongestStreak)
	})

	t.Run("Success: Text Format", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/heatmap?format=text", "user-1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.DefaultLookbackWeeks*domain.DaysPerWeek, strings.Count(w.Body.String(), "■"))
	})

	t.Run("Failure: Source Unavailable", func(t *testing.T) {
		cfg := domain.DefaultEngineConfig()
		router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
			WidgetHandler:  adapterHTTP.NewWidgetHandler(unavailableHeatmaps{}, nil, nil, nil, cfg),
			TokenValidator: env.tokens,
			StartTime:      fixedNow,
		})

		token, err := env.tokens.GenerateToken("user-1")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/widgets/heatmap", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "activity source unavailable")
	})

	t.Run("Failure: Unknown User Has No Activity", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/heatmap", "user-404", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failure: Malformed End Date", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/v1/widgets/heatmap?end_date=03/10/2025", "user-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWidgetHandler_BuildHeatmap(t *testing.T) {
	env := setupWidgetRouter(t, nil)

	t.Run("Success: Aggregator Payload", func(t *testing.T) {
		body := `{"total":{"lastYear":42},"contributions":[
			{"date":"2025-01-01","count":1,"level":1},
			{"date":"2025-01-02","count":4,"level":4}]}`

		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap", "user-1", body)
		require.Equal(t, http.StatusOK, w.Code)

		var heatmap domain.Heatmap
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &heatmap))
		assert.Equal(t, 42, heatmap.Total)
		assert.Equal(t, 4, heatmap.MaxCount)
		require.Len(t, heatmap.Weeks, 1)
		assert.Equal(t, "2025-01-01", heatmap.Weeks[0][3].Date)
	})

	t.Run("Failure: Unknown Shape", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap", "user-1", `{"hello":"world"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure: Empty Series", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap", "user-1", `[]`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failure: Payload Too Large", func(t *testing.T) {
		body := `[{"date":"2025-01-01","count":1,"note":"` + strings.Repeat("x", 3<<20) + `"}]`
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap", "user-1", body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("Failure: Unreadable Body Is Not Too Large", func(t *testing.T) {
		token, err := env.tokens.GenerateToken("user-1")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/widgets/heatmap", brokenBody{})
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure: Requires Token", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap", "", `[]`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestWidgetHandler_RefreshHeatmap(t *testing.T) {
	env := setupWidgetRouter(t, nil)

	t.Run("Success: Queued", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap/refresh", "user-1", "")
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, []string{"user-1"}, env.queue.users)
	})

	t.Run("Success: Carries Timezone", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap/refresh?tz=UTC", "user-1", "")
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, []string{"", "UTC"}, env.queue.zones)
	})

	t.Run("Failure: Unknown Timezone", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap/refresh?tz=Mars/Olympus", "user-1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, env.queue.users, 2)
	})

	t.Run("Failure: Queue Full", func(t *testing.T) {
		env.queue.accept = false
		w := env.do(t, http.MethodPost, "/api/v1/widgets/heatmap/refresh", "user-1", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	t.Run("Success: No Backing Stores", func(t *testing.T) {
		env := setupWidgetRouter(t, nil)
		w := env.do(t, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"disabled"`)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Failure: Database Down", func(t *testing.T) {
		env := setupWidgetRouter(t, failingPinger{})
		w := env.do(t, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
	})

	t.Run("Success: Redis Down Is Degraded", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		rdb := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 200 * time.Millisecond,
			MaxRetries:  -1,
		})
		defer rdb.Close()

		router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
			WidgetHandler:  adapterHTTP.NewWidgetHandler(unavailableHeatmaps{}, nil, nil, nil, domain.DefaultEngineConfig()),
			TokenValidator: services.NewTokenService("handler-secret", "kanso-widgets", time.Hour),
			Redis:          rdb,
			StartTime:      fixedNow,
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"degraded"`)
		assert.Contains(t, w.Body.String(), `"redis":"unreachable"`)
		assert.Contains(t, w.Body.String(), `"database":"disabled"`)
	})

	t.Run("Success: CORS Preflight", func(t *testing.T) {
		env := setupWidgetRouter(t, nil)
		w := env.do(t, http.MethodOptions, "/api/v1/widgets/progress", "", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
