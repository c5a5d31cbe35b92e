package usecase

import (
	"strings"
	"testing"
)

func TestBuildUserPrompt(t *testing.T) {
	got := buildUserPrompt("Bob: ship it Friday")

	if !strings.Contains(got, "Meeting transcript:\nBob: ship it Friday\n") {
		t.Errorf("prompt does not embed transcript: %q", got)
	}
	if !strings.Contains(got, responseExample) {
		t.Errorf("prompt does not include the response example")
	}
	if !strings.Contains(systemInstruction, "exactly one JSON object") {
		t.Errorf("system instruction must demand a single JSON object")
	}
}
