package datemath

import "errors"

// CanonicalLayout is the canonical deadline format (YYYY-MM-DD).
const CanonicalLayout = "2006-01-02"

// ErrUnrecognized is returned when a deadline phrase cannot be resolved to a day.
var ErrUnrecognized = errors.New("unrecognized date phrase")
