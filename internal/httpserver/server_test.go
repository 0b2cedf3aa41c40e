package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finpal-guardian/config"
	"finpal-guardian/internal/guardian"
	"finpal-guardian/internal/middleware"
	"finpal-guardian/internal/model"
	"finpal-guardian/pkg/log"
	"finpal-guardian/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuardian struct {
	got guardian.InboundRequest
}

func (f *fakeGuardian) Route(ctx context.Context, req guardian.InboundRequest) guardian.Envelope {
	f.got = req
	return guardian.Envelope{FinalRoute: model.CategoryThreatTriage}
}

func newServer(t *testing.T, uc guardian.UseCase, m *metrics.Metrics) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:          l,
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     string(model.EnvironmentDevelopment),
		Middleware:      middleware.New(l, config.RateLimitConfig{}),
		Metrics:         m,
		GuardianUseCase: uc,
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	tcs := map[string]Config{
		"missing mode":     {Port: 1, GuardianUseCase: &fakeGuardian{}},
		"missing port":     {Mode: gin.TestMode, GuardianUseCase: &fakeGuardian{}},
		"missing guardian": {Mode: gin.TestMode, Port: 1},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := New(l, cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, &fakeGuardian{}, metrics.New())

	for _, path := range []string{"/health", "/ready", "/live"} {
		rec := httptest.NewRecorder()
		srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var resp struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ServiceName, resp.Data["service"])
	}

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestMetricsRouteOptional(t *testing.T) {
	srv := newServer(t, &fakeGuardian{}, nil)

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGuardianRouteMounted(t *testing.T) {
	uc := &fakeGuardian{}
	srv := newServer(t, uc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/guardian", strings.NewReader(`{"text":"is this a scam?"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "is this a scam?", uc.got.Text)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
}

func TestOptionalDomainsSkipped(t *testing.T) {
	srv := newServer(t, &fakeGuardian{}, nil)

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/threat/patterns", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
