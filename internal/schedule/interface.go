package schedule

import (
	"context"

	"syncnotes/pkg/gcalendar"
)

// UseCase exports extracted tasks to a calendar.
type UseCase interface {
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}

// CalendarClient is the calendar backend. *gcalendar.Client satisfies it.
type CalendarClient interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
