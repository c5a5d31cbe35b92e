package transcript

// ProcessInput is the input for a single extraction request.
type ProcessInput struct {
	Transcript string
}

// Task is a single action item. Title is never blank.
type Task struct {
	Title   string  `json:"title"`
	DueDate *string `json:"due_date"`
}

// HasDueDate reports whether the task carries a deadline.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// ProcessingResult is the validated output of one extraction.
// Field order matches the serialized key order.
type ProcessingResult struct {
	Summary   string   `json:"summary"`
	Decisions []string `json:"decisions"`
	Tasks     []Task   `json:"tasks"`
}

// RawTask is a task as read from model output, before validation.
// A nil Title means the field was missing or null.
type RawTask struct {
	Title   *string
	DueDate *string
}
