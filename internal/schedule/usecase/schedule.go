package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
	"syncnotes/pkg/datemath"
	"syncnotes/pkg/gcalendar"
)

// Schedule creates one all-day event per task with a resolvable deadline.
// A calendar failure on one task does not stop the others; ErrAllFailed is returned
// only when there was something to schedule and nothing succeeded.
func (uc *implUseCase) Schedule(ctx context.Context, input schedule.ScheduleInput) (schedule.ScheduleOutput, error) {
	out := schedule.ScheduleOutput{
		Scheduled: []schedule.ScheduledTask{},
		Skipped:   []schedule.SkippedTask{},
		Failed:    []schedule.FailedTask{},
	}
	if uc.calendar == nil {
		return out, schedule.ErrCalendarDisabled
	}

	uc.l.Infof(ctx, "schedule.Schedule: exporting %d tasks", len(input.Tasks))
	base := uc.now()

	for _, task := range input.Tasks {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		if !task.HasDueDate() {
			out.Skipped = append(out.Skipped, skipped(task, schedule.ReasonNoDeadline))
			continue
		}

		date, err := uc.parser.Parse(*task.DueDate, base)
		if err != nil {
			uc.l.Debugf(ctx, "schedule.Schedule: cannot resolve %q: %v", *task.DueDate, err)
			out.Skipped = append(out.Skipped, skipped(task, schedule.ReasonUnrecognizedDeadline))
			continue
		}
		day := date.Format(datemath.CanonicalLayout)

		if uc.alreadyScheduled(ctx, task.Title, date) {
			out.Skipped = append(out.Skipped, skipped(task, schedule.ReasonAlreadyScheduled))
			continue
		}

		event, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     task.Title,
			Description: description(input.Summary, *task.DueDate),
			Date:        date,
		})
		if err != nil {
			uc.l.Errorf(ctx, "schedule.Schedule: create event for %q: %v", task.Title, err)
			out.Failed = append(out.Failed, schedule.FailedTask{
				Title:   task.Title,
				DueDate: *task.DueDate,
				Date:    day,
				Error:   err.Error(),
			})
			continue
		}

		out.Scheduled = append(out.Scheduled, schedule.ScheduledTask{
			Title:     task.Title,
			DueDate:   *task.DueDate,
			Date:      day,
			EventID:   event.ID,
			EventLink: event.HTMLLink,
		})
	}

	uc.l.Infof(ctx, "schedule.Schedule: scheduled=%d skipped=%d failed=%d",
		len(out.Scheduled), len(out.Skipped), len(out.Failed))

	if len(out.Failed) > 0 && len(out.Scheduled) == 0 {
		return out, fmt.Errorf("%w: %d tasks", schedule.ErrAllFailed, len(out.Failed))
	}
	return out, nil
}

// alreadyScheduled looks for an event with the same title on the same day.
// A lookup failure is logged and treated as "not scheduled".
func (uc *implUseCase) alreadyScheduled(ctx context.Context, title string, date time.Time) bool {
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    date,
		TimeMax:    date.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Warnf(ctx, "schedule.alreadyScheduled: list events: %v", err)
		return false
	}

	for _, e := range events {
		if strings.EqualFold(strings.TrimSpace(e.Summary), title) {
			return true
		}
	}
	return false
}

func skipped(task transcript.Task, reason string) schedule.SkippedTask {
	return schedule.SkippedTask{
		Title:   task.Title,
		DueDate: task.DueDate,
		Reason:  reason,
	}
}

func description(summary, dueDate string) string {
	var sb strings.Builder
	sb.WriteString("Deadline: ")
	sb.WriteString(dueDate)
	if summary != "" {
		sb.WriteString("\n\nMeeting summary:\n")
		sb.WriteString(summary)
	}
	return sb.String()
}
