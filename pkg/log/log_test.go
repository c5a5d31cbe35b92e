package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"syncnotes/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	_, ok := log.RequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := log.WithRequestID(context.Background(), "req-123")
	id, ok := log.RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-123", id)

	_, ok = log.RequestIDFromContext(log.WithRequestID(context.Background(), ""))
	assert.False(t, ok)
}

func TestInit(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeDebug, Encoding: log.EncodingConsole},
	}

	for _, cfg := range configs {
		l := log.Init(cfg)
		assert.NotNil(t, l)
		l.Debugf(log.WithRequestID(context.Background(), "r1"), "logger ready: %s", cfg.Mode)
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	assert.NotPanics(t, func() {
		l.Info(context.Background(), "discarded")
		l.Errorf(context.Background(), "discarded %d", 1)
	})
}
