package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tidwall/pretty"

	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
)

const (
	ruleWidth      = 60
	noDeadlineText = "No deadline specified"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeJSON writes js with a trailing newline, syntax-coloured when color is set.
func writeJSON(w io.Writer, js []byte, color bool) error {
	if color {
		js = pretty.Color(pretty.Pretty(js), nil)
	}
	js = bytes.TrimRight(js, "\n")
	_, err := fmt.Fprintf(w, "%s\n", js)
	return err
}

type jsonReport struct {
	transcript.ProcessingResult
	Schedule *schedule.ScheduleOutput `json:"schedule,omitempty"`
}

func writeJSONReport(w io.Writer, result transcript.ProcessingResult, scheduled *schedule.ScheduleOutput, color bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{ProcessingResult: result, Schedule: scheduled}); err != nil {
		return err
	}
	return writeJSON(w, buf.Bytes(), color)
}

// writeReport prints the human-readable report.
func writeReport(w io.Writer, path string, result transcript.ProcessingResult, scheduled *schedule.ScheduleOutput) error {
	var sb strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(&sb, "\n%s\nPROCESSED: %s\n%s\n\n", rule, path, rule)

	sb.WriteString("SUMMARY:\n")
	fmt.Fprintf(&sb, "  %s\n\n", result.Summary)

	sb.WriteString("DECISIONS:\n")
	if len(result.Decisions) == 0 {
		sb.WriteString("  No decisions found\n")
	}
	for i, d := range result.Decisions {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, d)
	}
	sb.WriteString("\n")

	sb.WriteString("TASKS:\n")
	if len(result.Tasks) == 0 {
		sb.WriteString("  No tasks found\n")
	}
	for i, t := range result.Tasks {
		due := noDeadlineText
		if t.HasDueDate() {
			due = *t.DueDate
		}
		fmt.Fprintf(&sb, "  %d. %s\n     Due: %s\n", i+1, t.Title, due)
	}
	sb.WriteString("\n")

	if scheduled != nil {
		writeSchedule(&sb, *scheduled)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSchedule(sb *strings.Builder, out schedule.ScheduleOutput) {
	sb.WriteString("CALENDAR:\n")
	if len(out.Scheduled)+len(out.Skipped)+len(out.Failed) == 0 {
		sb.WriteString("  Nothing to schedule\n\n")
		return
	}
	for _, s := range out.Scheduled {
		fmt.Fprintf(sb, "  + %s on %s", s.Title, s.Date)
		if s.EventLink != "" {
			fmt.Fprintf(sb, " (%s)", s.EventLink)
		}
		sb.WriteString("\n")
	}
	for _, s := range out.Skipped {
		fmt.Fprintf(sb, "  - %s: %s\n", s.Title, s.Reason)
	}
	for _, f := range out.Failed {
		fmt.Fprintf(sb, "  ! %s: %s\n", f.Title, f.Error)
	}
	sb.WriteString("\n")
}
