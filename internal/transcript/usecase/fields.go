package usecase

import (
	"strings"

	"github.com/tidwall/gjson"

	"syncnotes/internal/transcript"
)

// extractedFields is the loosely typed content of a model response.
type extractedFields struct {
	summary   string
	decisions []string
	tasks     []transcript.RawTask
}

func invalid(reason string) error {
	return &transcript.ValidationError{Reason: reason}
}

// field returns the value of key in obj. When a key repeats, the last occurrence wins,
// as with a standard JSON decode into a map.
func field(obj gjson.Result, key string) gjson.Result {
	var out gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			out = v
		}
		return true
	})
	return out
}

// readFields pulls summary, decisions and tasks out of doc, rejecting values of the wrong JSON type.
// Missing and null fields read as empty.
func (uc *implUseCase) readFields(doc gjson.Result) (extractedFields, error) {
	if !doc.IsObject() {
		return extractedFields{}, invalid("model response is not a JSON object")
	}

	var out extractedFields

	summary := field(doc, "summary")
	switch summary.Type {
	case gjson.Null:
	case gjson.String:
		out.summary = summary.Str
	default:
		return extractedFields{}, invalid("summary must be a string")
	}

	decisions := field(doc, "decisions")
	if decisions.Exists() && decisions.Type != gjson.Null {
		if !decisions.IsArray() {
			return extractedFields{}, invalid("decisions must be an array")
		}
		for _, d := range decisions.Array() {
			switch d.Type {
			case gjson.Null:
			case gjson.String:
				out.decisions = append(out.decisions, d.Str)
			default:
				return extractedFields{}, invalid("decisions must contain only strings")
			}
		}
	}

	tasks := field(doc, "tasks")
	if tasks.Exists() && tasks.Type != gjson.Null {
		if !tasks.IsArray() {
			return extractedFields{}, invalid("tasks must be an array")
		}
		for _, t := range tasks.Array() {
			raw, err := uc.readTask(t)
			if err != nil {
				return extractedFields{}, err
			}
			out.tasks = append(out.tasks, raw)
		}
	}

	return out, nil
}

func (uc *implUseCase) readTask(t gjson.Result) (transcript.RawTask, error) {
	if !t.IsObject() {
		return transcript.RawTask{}, invalid("tasks must contain only objects")
	}

	var raw transcript.RawTask

	title := field(t, "title")
	switch title.Type {
	case gjson.Null:
	case gjson.String:
		s := title.Str
		raw.Title = &s
	default:
		return transcript.RawTask{}, invalid("task title must be a string")
	}

	due := field(t, "due_date")
	switch due.Type {
	case gjson.Null:
	case gjson.String:
		raw.DueDate = uc.normalizeDueDate(due.Str)
	default:
		return transcript.RawTask{}, invalid("task due_date must be a string or null")
	}

	return raw, nil
}

// normalizeDueDate returns nil for blank or "null" deadlines.
func (uc *implUseCase) normalizeDueDate(due string) *string {
	due = strings.TrimSpace(due)
	if due == "" || strings.EqualFold(due, "null") {
		return nil
	}

	normalized, ok := uc.normalizer.Normalize(due)
	if !ok {
		return nil
	}
	return &normalized
}
