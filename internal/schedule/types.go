package schedule

import "syncnotes/internal/transcript"

// Skip reasons.
const (
	ReasonNoDeadline           = "no deadline"
	ReasonUnrecognizedDeadline = "unrecognized deadline"
	ReasonAlreadyScheduled     = "already on calendar"
)

// ScheduleInput is the set of tasks to export. Summary, when set, goes into each event description.
type ScheduleInput struct {
	Tasks   []transcript.Task
	Summary string
}

// ScheduleOutput partitions the input tasks. Every input task lands in exactly one list.
type ScheduleOutput struct {
	Scheduled []ScheduledTask `json:"scheduled"`
	Skipped   []SkippedTask   `json:"skipped"`
	Failed    []FailedTask    `json:"failed"`
}

// ScheduledTask is a task for which a calendar event now exists.
type ScheduledTask struct {
	Title     string `json:"title"`
	DueDate   string `json:"due_date"`
	Date      string `json:"date"`
	EventID   string `json:"event_id"`
	EventLink string `json:"event_link"`
}

// SkippedTask is a task that was not sent to the calendar.
type SkippedTask struct {
	Title   string  `json:"title"`
	DueDate *string `json:"due_date"`
	Reason  string  `json:"reason"`
}

// FailedTask is a task whose event could not be created.
type FailedTask struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	Date    string `json:"date"`
	Error   string `json:"error"`
}
