// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestReadiness(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	rr := serve(NewHandler(Dependency{Name: "database", Checker: ok}), "/readyz")
	assert.Equal(t, http.StatusOK, rr.Code)

	h := NewHandler(
		Dependency{Name: "database", Checker: ok},
		Dependency{Name: "redis", Checker: down},
	)
	rr = serve(h, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	require.Len(t, resp.Checks, 2)
	assert.True(t, resp.Checks[0].Healthy)
	assert.False(t, resp.Checks[1].Healthy)
	assert.Equal(t, "ping failed", resp.Checks[1].Message)
	assert.NotContains(t, rr.Body.String(), "refused")
}

func TestShutdown(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, http.StatusOK, serve(h, "/healthz").Code)

	h.SetReady(false)
	assert.Equal(t, http.StatusOK, serve(h, "/livez").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/readyz").Code)

	h.SetShutdown(true)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, "/healthz").Code)
}
