package usecase

import (
	"time"

	"syncnotes/internal/schedule"
	"syncnotes/pkg/datemath"
	pkgLog "syncnotes/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	calendar   schedule.CalendarClient
	parser     *datemath.Parser
	calendarID string
	now        func() time.Time
}

// Option configures the schedule UseCase.
type Option func(*implUseCase)

// WithClock overrides the reference time for relative deadlines.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new schedule UseCase instance.
func New(
	l pkgLog.Logger,
	calendar schedule.CalendarClient,
	parser *datemath.Parser,
	calendarID string,
	opts ...Option,
) *implUseCase {
	uc := &implUseCase{
		l:          l,
		calendar:   calendar,
		parser:     parser,
		calendarID: calendarID,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ schedule.UseCase = (*implUseCase)(nil)
