package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"finpal-guardian/config"
	"finpal-guardian/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw Middleware) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Logger(), mw.RateLimit())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return r, &seen
}

func TestRequestID(t *testing.T) {
	tcs := map[string]struct {
		header   string
		wantSame bool
	}{
		"generated when absent": {},
		"caller id kept":        {header: "req-123", wantSame: true},
		"oversized id replaced": {header: strings.Repeat("a", maxRequestIDLen+1)},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r, seen := newEngine(New(log.NewNop(), config.RateLimitConfig{}))

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set(HeaderRequestID, tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusNoContent, rec.Code)
			got := rec.Header().Get(HeaderRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, *seen)
			if tc.wantSame {
				assert.Equal(t, tc.header, got)
			} else {
				assert.NotEqual(t, tc.header, got)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	r, _ := newEngine(New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 10}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":4000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2"))
}

func TestRateLimitDisabled(t *testing.T) {
	r, _ := newEngine(New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestNewRateLimiterMinimumBurst(t *testing.T) {
	rl := newRateLimiter(3)
	assert.Equal(t, 1, rl.burst)
	require.NoError(t, rl.Allow("k"))
	assert.Error(t, rl.Allow("k"))
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	// 10/min gives a burst of one; concurrent first hits must share one bucket.
	rl := newRateLimiter(10)

	const workers = 50
	var (
		allowed atomic.Int32
		start   = make(chan struct{})
		wg      sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.9") == nil {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, allowed.Load())
	assert.Same(t, rl.limiter("10.0.0.9"), rl.limiter("10.0.0.9"))
}
