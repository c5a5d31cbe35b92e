package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncnotes/internal/schedule"
	"syncnotes/internal/schedule/usecase"
	"syncnotes/internal/transcript"
	"syncnotes/pkg/datemath"
	"syncnotes/pkg/gcalendar"
	"syncnotes/pkg/log"
)

type mockCalendar struct {
	mu       sync.Mutex
	created  []gcalendar.AllDayEventRequest
	existing []gcalendar.Event
	failFor  map[string]error
	listErr  error
}

func (m *mockCalendar) CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[req.Summary]; ok {
		return nil, err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:       "evt-" + req.Summary,
		Summary:  req.Summary,
		HTMLLink: "https://calendar.example.com/" + req.Summary,
	}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	day := req.TimeMin.Format(datemath.CanonicalLayout)
	var out []gcalendar.Event
	for _, e := range m.existing {
		if e.Start == day {
			out = append(out, e)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

// Wednesday, May 1, 2024.
var base = time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, cal schedule.CalendarClient) schedule.UseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return usecase.New(log.NewNop(), cal, parser, "primary", usecase.WithClock(func() time.Time { return base }))
}

func TestSchedule_Partitions(t *testing.T) {
	cal := &mockCalendar{}
	uc := newUseCase(t, cal)

	out, err := uc.Schedule(context.Background(), schedule.ScheduleInput{
		Summary: "Release planning",
		Tasks: []transcript.Task{
			{Title: "Ship release", DueDate: strPtr("2024-05-10")},
			{Title: "Write notes", DueDate: strPtr("tomorrow")},
			{Title: "Book venue", DueDate: strPtr("next friday")},
			{Title: "Think about it"},
			{Title: "Someday", DueDate: strPtr("end of the quarter")},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Scheduled, 3)
	assert.Equal(t, "2024-05-10", out.Scheduled[0].Date)
	assert.Equal(t, "2024-05-02", out.Scheduled[1].Date)
	assert.Equal(t, "2024-05-03", out.Scheduled[2].Date)
	assert.Equal(t, "evt-Ship release", out.Scheduled[0].EventID)
	assert.Equal(t, "https://calendar.example.com/Ship release", out.Scheduled[0].EventLink)
	assert.Equal(t, "tomorrow", out.Scheduled[1].DueDate)

	require.Len(t, out.Skipped, 2)
	assert.Equal(t, schedule.ReasonNoDeadline, out.Skipped[0].Reason)
	assert.Equal(t, schedule.ReasonUnrecognizedDeadline, out.Skipped[1].Reason)
	assert.Empty(t, out.Failed)

	require.Len(t, cal.created, 3)
	assert.Equal(t, "primary", cal.created[0].CalendarID)
	assert.Contains(t, cal.created[0].Description, "Deadline: 2024-05-10")
	assert.Contains(t, cal.created[0].Description, "Release planning")
}

func TestSchedule_SkipsExistingEvent(t *testing.T) {
	cal := &mockCalendar{
		existing: []gcalendar.Event{{ID: "old", Summary: "ship release ", Start: "2024-05-10"}},
	}
	uc := newUseCase(t, cal)

	out, err := uc.Schedule(context.Background(), schedule.ScheduleInput{
		Tasks: []transcript.Task{{Title: "Ship release", DueDate: strPtr("2024-05-10")}},
	})
	require.NoError(t, err)

	assert.Empty(t, out.Scheduled)
	require.Len(t, out.Skipped, 1)
	assert.Equal(t, schedule.ReasonAlreadyScheduled, out.Skipped[0].Reason)
	assert.Empty(t, cal.created)
}

func TestSchedule_ListFailureStillCreates(t *testing.T) {
	cal := &mockCalendar{listErr: errors.New("list unavailable")}
	uc := newUseCase(t, cal)

	out, err := uc.Schedule(context.Background(), schedule.ScheduleInput{
		Tasks: []transcript.Task{{Title: "Ship release", DueDate: strPtr("2024-05-10")}},
	})
	require.NoError(t, err)
	assert.Len(t, out.Scheduled, 1)
}

func TestSchedule_PartialFailure(t *testing.T) {
	cal := &mockCalendar{failFor: map[string]error{"Book venue": errors.New("quota exceeded")}}
	uc := newUseCase(t, cal)

	out, err := uc.Schedule(context.Background(), schedule.ScheduleInput{
		Tasks: []transcript.Task{
			{Title: "Ship release", DueDate: strPtr("2024-05-10")},
			{Title: "Book venue", DueDate: strPtr("today")},
		},
	})
	require.NoError(t, err)

	assert.Len(t, out.Scheduled, 1)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "Book venue", out.Failed[0].Title)
	assert.Equal(t, "2024-05-01", out.Failed[0].Date)
	assert.Equal(t, "quota exceeded", out.Failed[0].Error)
}

func TestSchedule_AllFailed(t *testing.T) {
	cal := &mockCalendar{failFor: map[string]error{"Ship release": errors.New("boom")}}
	uc := newUseCase(t, cal)

	out, err := uc.Schedule(context.Background(), schedule.ScheduleInput{
		Tasks: []transcript.Task{{Title: "Ship release", DueDate: strPtr("2024-05-10")}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrAllFailed)
	assert.Len(t, out.Failed, 1)
}

func TestSchedule_NothingToSchedule(t *testing.T) {
	uc := newUseCase(t, &mockCalendar{})

	out, err := uc.Schedule(context.Background(), schedule.ScheduleInput{})
	require.NoError(t, err)
	assert.NotNil(t, out.Scheduled)
	assert.NotNil(t, out.Skipped)
	assert.NotNil(t, out.Failed)
}

func TestSchedule_Disabled(t *testing.T) {
	uc := newUseCase(t, nil)

	_, err := uc.Schedule(context.Background(), schedule.ScheduleInput{
		Tasks: []transcript.Task{{Title: "Ship release", DueDate: strPtr("2024-05-10")}},
	})
	assert.ErrorIs(t, err, schedule.ErrCalendarDisabled)
}

func TestSchedule_CanceledContext(t *testing.T) {
	cal := &mockCalendar{}
	uc := newUseCase(t, cal)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Schedule(ctx, schedule.ScheduleInput{
		Tasks: []transcript.Task{{Title: "Ship release", DueDate: strPtr("2024-05-10")}},
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, cal.created)
}
