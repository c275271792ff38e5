// AngelaMos | 2026
// handler_test.go

package dashboard

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository, cfg HandlerConfig) http.Handler {
	cfg.Service = NewService(repo)
	h := NewHandler(cfg)
	h.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestGetStats_ResponseShape(t *testing.T) {
	r := newTestRouter(&fakeRepo{
		users:    []UserCount{{UserType: "talent", Count: 2}},
		statuses: []StatusCount{{Status: "completed", Count: 1}, {Status: "archived", Count: 1}},
		revenue:  Revenue{Total: 300, Bookings: 1, Average: 300},
	}, HandlerConfig{})

	rr := get(r, "/dashboard/stats")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.JSONEq(t, `{
		"users": {"talents": 2, "mediaOwners": 0, "total": 2},
		"bookings": {"pending": 0, "confirmed": 0, "completed": 1, "cancelled": 0, "total": 2},
		"revenue": {"total": 300, "totalBookings": 1, "average": 300},
		"recentActivity": [],
		"completionRate": 50
	}`, rr.Body.String())
}

func TestGetStats_StoreFailure(t *testing.T) {
	r := newTestRouter(&fakeRepo{err: errors.New("timeout")}, HandlerConfig{})

	rr := get(r, "/dashboard/stats")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to fetch dashboard statistics")
	assert.NotContains(t, rr.Body.String(), "timeout")
}

func TestGetReport(t *testing.T) {
	r := newTestRouter(&fakeRepo{
		statuses: []StatusCount{{Status: "pending", Count: 1}},
		recent: []Activity{{
			ID:          1,
			Title:       "A rather long booking title that will not fit the column",
			Status:      "pending",
			TalentName:  sql.NullString{String: "DJ Nova", Valid: true},
			CompanyName: sql.NullString{String: "Wave FM", Valid: true},
		}},
	}, HandlerConfig{})

	rr := get(r, "/dashboard/report.pdf")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "dashboard-2026-03-10.pdf")
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF-")))
}

func TestGetSystemStats(t *testing.T) {
	r := newTestRouter(&fakeRepo{}, HandlerConfig{
		DBStats: func() sql.DBStats {
			return sql.DBStats{MaxOpenConnections: 25, OpenConnections: 3, InUse: 1, Idle: 2}
		},
		RedisStats: func() *redis.PoolStats {
			return &redis.PoolStats{Hits: 10, TotalConns: 4, IdleConns: 3}
		},
		DBPing:    func(context.Context) error { return nil },
		RedisPing: func(context.Context) error { return errors.New("refused") },
	})

	rr := get(r, "/dashboard/system")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp SystemStatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Database.Healthy)
	assert.Equal(t, 25, resp.Database.Stats.MaxOpenConnections)
	assert.False(t, resp.Redis.Healthy)
	assert.Equal(t, uint32(10), resp.Redis.Stats.Hits)
	assert.NotEmpty(t, resp.Runtime.GoVersion)
}

func TestRenderReport_TranslatesUserText(t *testing.T) {
	name := "Zoë Café"
	stats := &Stats{RecentActivity: []ActivityResponse{{
		ID:         1,
		Title:      "Soirée 東京",
		Status:     "pending",
		TalentName: &name,
	}}}

	out, err := RenderReport(stats, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	tr := gofpdf.New("P", "mm", "A4", "").UnicodeTranslatorFromDescriptor("")
	assert.Equal(t, "Caf\xe9", tr("Café"))
	assert.Equal(t, "Soir\xe9e ..", tr("Soirée 東京"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd~", truncate("abcdefgh", 5))
	assert.Equal(t, "-", deref(nil))
}
