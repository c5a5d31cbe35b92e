// Package llmjson pulls a JSON document out of raw model output.
package llmjson

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// MalformedResponseError is returned when model output is not JSON after fence stripping.
type MalformedResponseError struct {
	Text string // cleaned text that failed to parse
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// StripFences removes a leading ```json or ``` marker and a trailing ``` marker.
func StripFences(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, jsonFence) {
		cleaned = cleaned[len(jsonFence):]
	} else if strings.HasPrefix(cleaned, fence) {
		cleaned = cleaned[len(fence):]
	}

	cleaned = strings.TrimSuffix(cleaned, fence)

	return strings.TrimSpace(cleaned)
}

// Extract strips formatting fences from text and parses what remains.
// The shape of the returned value is not checked.
func Extract(text string) (gjson.Result, error) {
	cleaned := StripFences(text)

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return gjson.Result{}, &MalformedResponseError{Text: cleaned, Err: err}
	}

	return gjson.ParseBytes(raw), nil
}
