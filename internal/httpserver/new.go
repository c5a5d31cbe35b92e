package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"syncnotes/internal/metrics"
	"syncnotes/internal/middleware"
	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
	"syncnotes/pkg/log"
)

// DefaultShutdownTimeout bounds graceful shutdown when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	apiKey          string
	rateLimitPerMin int
	trustedProxies  []string
	metrics         *metrics.Metrics

	// Transcript domain
	transcriptUC transcript.UseCase
	scheduleUC   schedule.UseCase
	providers    []string // "name/model", for /ready
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	APIKey          string
	RateLimitPerMin int
	TrustedProxies  []string // forwarding headers are honoured only from these; empty trusts none
	Metrics         *metrics.Metrics

	TranscriptUseCase transcript.UseCase
	ScheduleUseCase   schedule.UseCase // optional
	Providers         []string
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		apiKey:          cfg.APIKey,
		rateLimitPerMin: cfg.RateLimitPerMin,
		trustedProxies:  cfg.TrustedProxies,
		metrics:         cfg.Metrics,
		transcriptUC:    cfg.TranscriptUseCase,
		scheduleUC:      cfg.ScheduleUseCase,
		providers:       cfg.Providers,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = DefaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.transcriptUC == nil {
		return errors.New("transcript use case is required")
	}
	return nil
}

func (srv HTTPServer) newMiddleware() middleware.Middleware {
	return middleware.New(srv.l, middleware.Config{
		APIKey:          srv.apiKey,
		RateLimitPerMin: srv.rateLimitPerMin,
		Metrics:         srv.metrics,
	})
}
