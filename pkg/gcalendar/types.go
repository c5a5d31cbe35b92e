package gcalendar

import "time"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// dateLayout is the all-day date format the Calendar API expects.
const dateLayout = "2006-01-02"

// AllDayEventRequest is the input for creating an all-day event.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // only the calendar date is used
}

// Event is a simplified representation of a Google Calendar event.
// Start and End hold a date for all-day events and an RFC3339 timestamp otherwise.
type Event struct {
	ID          string
	Summary     string
	Description string
	HTMLLink    string
	Start       string
	End         string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
