package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	// Matched anywhere in the phrase, e.g. "within 2 weeks" or "in 3 days from now".
	relativeSpanRe = regexp.MustCompile(`in (\d+) (day|week|month)s?`)

	monthDayRe  = regexp.MustCompile(`^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?$`)
	dayMonthRe  = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?([a-z]+)\.?$`)
	monthYearRe = regexp.MustCompile(`^([a-z]+)\.?,?\s+(\d{4})$`)

	months = map[string]time.Month{
		"january": time.January, "jan": time.January,
		"february": time.February, "feb": time.February,
		"march": time.March, "mar": time.March,
		"april": time.April, "apr": time.April,
		"may":  time.May,
		"june": time.June, "jun": time.June,
		"july": time.July, "jul": time.July,
		"august": time.August, "aug": time.August,
		"september": time.September, "sep": time.September, "sept": time.September,
		"october": time.October, "oct": time.October,
		"november": time.November, "nov": time.November,
		"december": time.December, "dec": time.December,
	}
)

// Normalizer canonicalizes free-form deadline phrases produced by the model.
// Relative phrases are kept verbatim; absolute dates become YYYY-MM-DD.
// Normalizer is safe for concurrent use.
type Normalizer struct {
	location *time.Location
	now      func() time.Time
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithClock overrides the clock used to place year-less dates.
func WithClock(now func() time.Time) NormalizerOption {
	return func(n *Normalizer) {
		n.now = now
	}
}

// NewNormalizer creates a Normalizer that interprets dates in the given IANA timezone.
// An empty timezone means UTC.
func NewNormalizer(timezone string, opts ...NormalizerOption) (*Normalizer, error) {
	loc, err := loadLocation(timezone)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		location: loc,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Normalize returns the canonical form of raw and whether a deadline is present at all.
// It never fails: phrases it cannot interpret are returned unchanged (trimmed).
func (n *Normalizer) Normalize(raw string) (string, bool) {
	phrase := strings.TrimSpace(raw)
	if phrase == "" {
		return "", false
	}

	lower := strings.ToLower(phrase)

	switch {
	case lower == "tomorrow", lower == "today":
		return phrase, true
	case strings.Contains(lower, "next week"):
		return phrase, true
	case mentionsWeekday(lower) && (strings.Contains(lower, "next") || strings.Contains(lower, "this")):
		return phrase, true
	case relativeSpanRe.MatchString(lower):
		return phrase, true
	}

	if t, matched, ok := n.parsePartialDate(lower); matched {
		if ok {
			return t.Format(CanonicalLayout), true
		}
		return phrase, true
	}

	if t, ok := n.parseMonthYear(lower); ok {
		return t.Format(CanonicalLayout), true
	}

	if t, err := parseAbsolute(phrase, n.location); err == nil {
		// dateparse reports a missing year as year 0
		if t.Year() == 0 {
			if upcoming, ok := n.nextOccurrence(t.Month(), t.Day()); ok {
				return upcoming.Format(CanonicalLayout), true
			}
			return phrase, true
		}
		return t.Format(CanonicalLayout), true
	}

	return phrase, true
}

// parseMonthYear resolves "june 2025" to the first day of that month.
func (n *Normalizer) parseMonthYear(phrase string) (time.Time, bool) {
	m := monthYearRe.FindStringSubmatch(phrase)
	if m == nil {
		return time.Time{}, false
	}
	month, known := months[m[1]]
	if !known {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, n.location), true
}

func mentionsWeekday(phrase string) bool {
	for name := range weekdays {
		if strings.Contains(phrase, name) {
			return true
		}
	}
	return false
}

// parsePartialDate handles year-less dates ("march 3", "3rd of march") by picking
// the nearest occurrence on or after today. matched reports whether phrase has that shape
// at all; ok is false for impossible days such as "april 31".
func (n *Normalizer) parsePartialDate(phrase string) (t time.Time, matched, ok bool) {
	var monthName, dayText string
	if m := monthDayRe.FindStringSubmatch(phrase); m != nil {
		monthName, dayText = m[1], m[2]
	} else if m := dayMonthRe.FindStringSubmatch(phrase); m != nil {
		dayText, monthName = m[1], m[2]
	} else {
		return time.Time{}, false, false
	}

	month, known := months[monthName]
	if !known {
		return time.Time{}, false, false
	}
	day, err := strconv.Atoi(dayText)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, true, false
	}

	t, ok = n.nextOccurrence(month, day)
	return t, true, ok
}

// nextOccurrence returns the first month/day on or after today. ok is false when the
// day never exists in that month.
func (n *Normalizer) nextOccurrence(month time.Month, day int) (time.Time, bool) {
	now := n.now().In(n.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, n.location)

	// Feb 29 may need up to three extra years to exist again.
	for year := today.Year(); year <= today.Year()+4; year++ {
		candidate := time.Date(year, month, day, 0, 0, 0, 0, n.location)
		if candidate.Month() != month || candidate.Day() != day {
			if month != time.February {
				return time.Time{}, false
			}
			continue
		}
		if !candidate.Before(today) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// parseAbsolute wraps dateparse, which can panic on some malformed inputs.
func parseAbsolute(phrase string, loc *time.Location) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dateparse: unparseable date %q", phrase)
		}
	}()
	return dateparse.ParseIn(phrase, loc)
}
