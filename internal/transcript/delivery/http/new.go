package http

import (
	"github.com/gin-gonic/gin"

	"syncnotes/internal/metrics"
	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
	"syncnotes/pkg/log"
)

// Handler is the public interface for the transcript HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        transcript.UseCase
	scheduler schedule.UseCase // nil when calendar export is not configured
	metrics   *metrics.Metrics // optional
}

// New creates a new HTTP handler for the transcript domain.
func New(l log.Logger, uc transcript.UseCase, scheduler schedule.UseCase, m *metrics.Metrics) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		scheduler: scheduler,
		metrics:   m,
	}
}

var _ Handler = (*handler)(nil)
