package transcript

import "strings"

const nullLiteral = "null"

// NewTask builds a Task with a trimmed title. Blank or "null" due dates become nil.
func NewTask(title string, dueDate *string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	return Task{
		Title:   title,
		DueDate: cleanDueDate(dueDate),
	}, nil
}

// NewProcessingResult validates raw extracted fields and assembles the result.
// Decisions and tasks are trimmed and de-duplicated case-insensitively; the first
// occurrence wins and input order is kept. Tasks without a usable title are dropped.
func NewProcessingResult(summary string, decisions []string, tasks []RawTask) (ProcessingResult, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return ProcessingResult{}, &ValidationError{Reason: "summary empty", Err: ErrEmptySummary}
	}

	return ProcessingResult{
		Summary:   summary,
		Decisions: uniqueDecisions(decisions),
		Tasks:     uniqueTasks(tasks),
	}, nil
}

func uniqueDecisions(decisions []string) []string {
	seen := make(map[string]struct{}, len(decisions))
	out := make([]string, 0, len(decisions))

	for _, d := range decisions {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		key := strings.ToLower(d)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}

func uniqueTasks(raw []RawTask) []Task {
	seen := make(map[string]struct{}, len(raw))
	out := make([]Task, 0, len(raw))

	for _, r := range raw {
		if r.Title == nil {
			continue
		}
		t, err := NewTask(*r.Title, r.DueDate)
		if err != nil {
			continue
		}
		key := strings.ToLower(t.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func cleanDueDate(dueDate *string) *string {
	if dueDate == nil {
		return nil
	}
	d := strings.TrimSpace(*dueDate)
	if d == "" || strings.EqualFold(d, nullLiteral) {
		return nil
	}
	return &d
}
