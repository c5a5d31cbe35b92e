package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves deadline phrases to calendar days in a fixed time zone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := loadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's time zone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a canonical (YYYY-MM-DD) or relative deadline to the start of that day.
// Supported relative forms: today, tomorrow, yesterday, next week, in N days|weeks|months,
// next <weekday>, this <weekday>, <weekday>. Anything else yields ErrUnrecognized.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	relative := strings.ToLower(strings.TrimSpace(phrase))
	relative = strings.TrimPrefix(relative, "by ")
	relative = strings.TrimPrefix(relative, "on ")

	if t, err := time.ParseInLocation(CanonicalLayout, relative, p.location); err == nil {
		return t, nil
	}

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfNextWeek(baseTime), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "next "), baseTime, false)
	}

	if strings.HasPrefix(relative, "this ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "this "), baseTime, true)
	}

	// "by friday" and "friday" mean the coming one, today included.
	if _, ok := weekdays[relative]; ok {
		return p.parseWeekday(relative, baseTime, true)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, phrase)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid amount %q", ErrUnrecognized, matches[1])
	}

	unit := matches[2]
	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseWeekday resolves "next friday" (strictly after today) and "this friday" (today or later).
func (p *Parser) parseWeekday(dayName string, baseTime time.Time, includeToday bool) (time.Time, error) {
	targetWeekday, ok := weekdays[strings.TrimSpace(dayName)]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}

	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// startOfNextWeek returns the Monday after baseTime's week.
func (p *Parser) startOfNextWeek(baseTime time.Time) time.Time {
	base := baseTime.In(p.location)
	offset := (int(time.Monday) - int(base.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return p.startOfDay(base.AddDate(0, 0, offset))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

func loadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}
