package schedule

import "errors"

var (
	ErrCalendarDisabled = errors.New("calendar export is not configured")
	ErrAllFailed        = errors.New("every calendar event failed")
)
