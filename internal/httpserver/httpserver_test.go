package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncnotes/internal/httpserver"
	"syncnotes/internal/metrics"
	"syncnotes/internal/transcript"
	"syncnotes/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) Process(ctx context.Context, input transcript.ProcessInput) (transcript.ProcessingResult, error) {
	return transcript.ProcessingResult{Summary: "ok", Decisions: []string{}, Tasks: []transcript.Task{}}, nil
}

func (stubUseCase) ProcessJSON(ctx context.Context, input transcript.ProcessInput) (string, error) {
	return "{}", nil
}

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()
	cfg.Mode = gin.TestMode
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.TranscriptUseCase == nil {
		cfg.TranscriptUseCase = stubUseCase{}
	}
	srv, err := httpserver.New(log.NewNop(), cfg)
	require.NoError(t, err)
	return srv
}

func do(srv *httpserver.HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err, "transcript use case is required")

	_, err = httpserver.New(log.NewNop(), httpserver.Config{Mode: gin.TestMode, TranscriptUseCase: stubUseCase{}})
	assert.Error(t, err, "port is required")

	_, err = httpserver.New(nil, httpserver.Config{Mode: gin.TestMode, Port: 1, TranscriptUseCase: stubUseCase{}})
	assert.Error(t, err, "logger is required")
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{
		Mode:              gin.TestMode,
		Port:              8080,
		TranscriptUseCase: stubUseCase{},
		TrustedProxies:    []string{"not-an-ip"},
	})
	assert.Error(t, err)
}

func TestProcessRoute_RateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	srv := newServer(t, httpserver.Config{RateLimitPerMin: 10})

	for i, forwarded := range []string{"1.1.1.1", "2.2.2.2"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transcripts/process", strings.NewReader(`{"transcript":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", forwarded)
		req.RemoteAddr = "192.0.2.10:5555"

		want := http.StatusOK
		if i > 0 {
			want = http.StatusTooManyRequests
		}
		assert.Equal(t, want, do(srv, req).Code)
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, httpserver.Config{Providers: []string{"openai/gpt-4o"}})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := do(srv, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := do(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Contains(t, w.Body.String(), `"providers":["openai/gpt-4o"]`)
	assert.Contains(t, w.Body.String(), `"calendar_export":false`)
}

func TestReady_NoProviders(t *testing.T) {
	srv := newServer(t, httpserver.Config{})

	w := do(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsRoute(t *testing.T) {
	srv := newServer(t, httpserver.Config{Metrics: metrics.New()})

	do(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	w := do(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `syncnotes_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestMetricsRoute_Disabled(t *testing.T) {
	srv := newServer(t, httpserver.Config{})

	w := do(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProcessRoute_APIKey(t *testing.T) {
	srv := newServer(t, httpserver.Config{APIKey: "secret"})

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transcripts/process", strings.NewReader(`{"transcript":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	assert.Equal(t, http.StatusUnauthorized, do(srv, newReq()).Code)

	req := newReq()
	req.Header.Set("X-API-Key", "secret")
	w := do(srv, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"summary":"ok"`)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServer(t, httpserver.Config{Port: 18089, ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
