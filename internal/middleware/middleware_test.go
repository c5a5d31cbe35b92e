package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncnotes/internal/metrics"
	"syncnotes/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		id, _ := log.RequestIDFromContext(c.Request.Context())
		c.String(http.StatusOK, id)
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw.RequestID())

	t.Run("generated when absent", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(HeaderRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("caller value is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		w := serve(r, req)

		assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "req-123", w.Body.String())
	})
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{name: "disabled", key: "", header: "", want: http.StatusOK},
		{name: "matching key", key: "secret", header: "secret", want: http.StatusOK},
		{name: "missing key", key: "secret", header: "", want: http.StatusUnauthorized},
		{name: "wrong key", key: "secret", header: "secrets", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := New(log.NewNop(), Config{APIKey: tt.key})
			r := newEngine(mw.APIKey())

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAPIKey, tt.header)
			}

			assert.Equal(t, tt.want, serve(r, req).Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request per client.
	mw := New(log.NewNop(), Config{RateLimitPerMin: 10})
	r := newEngine(mw.RateLimit())
	require.NoError(t, r.SetTrustedProxies(nil))

	first := httptest.NewRequest(http.MethodGet, "/ping", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	assert.Equal(t, http.StatusOK, serve(r, first).Code)

	second := httptest.NewRequest(http.MethodGet, "/ping", nil)
	second.RemoteAddr = "10.0.0.1:5001"
	assert.Equal(t, http.StatusTooManyRequests, serve(r, second).Code)

	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	assert.Equal(t, http.StatusOK, serve(r, other).Code)
}

func TestRateLimit_ForwardedForFromUntrustedClient(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitPerMin: 10})
	r := newEngine(mw.RateLimit())
	require.NoError(t, r.SetTrustedProxies(nil))

	for i, forwarded := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.9:4000"
		req.Header.Set("X-Forwarded-For", forwarded)

		want := http.StatusTooManyRequests
		if i == 0 {
			want = http.StatusOK
		}
		assert.Equal(t, want, serve(r, req).Code, "X-Forwarded-For %s", forwarded)
	}
}

func TestRateLimit_ForwardedForFromTrustedProxy(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitPerMin: 10})
	r := newEngine(mw.RateLimit())
	require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.254"}))

	for _, forwarded := range []string{"1.1.1.1", "2.2.2.2"} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.254:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		assert.Equal(t, http.StatusOK, serve(r, req).Code, "X-Forwarded-For %s", forwarded)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw.RateLimit())

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	mw := New(log.NewNop(), Config{Metrics: m})
	r := newEngine(mw.Metrics())

	serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/ping", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}
