package transcript_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syncnotes/internal/transcript"
)

func strPtr(s string) *string { return &s }

func TestNewTask(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		dueDate *string
		want    transcript.Task
		wantErr error
	}{
		{name: "trims title", title: "  Write report  ", want: transcript.Task{Title: "Write report"}},
		{name: "keeps due date", title: "Deploy", dueDate: strPtr("tomorrow"), want: transcript.Task{Title: "Deploy", DueDate: strPtr("tomorrow")}},
		{name: "null literal is absent", title: "Deploy", dueDate: strPtr("NULL"), want: transcript.Task{Title: "Deploy"}},
		{name: "blank due date is absent", title: "Deploy", dueDate: strPtr("  "), want: transcript.Task{Title: "Deploy"}},
		{name: "empty title", title: "", wantErr: transcript.ErrEmptyTitle},
		{name: "whitespace title", title: " \t\n", wantErr: transcript.ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transcript.NewTask(tt.title, tt.dueDate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewProcessingResult_DedupDecisions(t *testing.T) {
	got, err := transcript.NewProcessingResult("Sync", []string{"Decision A", "Decision B", "Decision A", "decision a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Decision A", "Decision B"}, got.Decisions)
}

func TestNewProcessingResult_DecisionsTrimmedAndEmptyDropped(t *testing.T) {
	got, err := transcript.NewProcessingResult("Sync", []string{"  Use Go ", "", "   ", "use go", "Hire"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Use Go", "Hire"}, got.Decisions)
}

func TestNewProcessingResult_DedupTasksFirstWins(t *testing.T) {
	raw := []transcript.RawTask{
		{Title: strPtr("Task A"), DueDate: strPtr("tomorrow")},
		{Title: strPtr("Task B"), DueDate: strPtr("next week")},
		{Title: strPtr("Task A"), DueDate: strPtr("today")},
		{Title: strPtr(" task b "), DueDate: nil},
	}

	got, err := transcript.NewProcessingResult("Sync", nil, raw)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "Task A", got.Tasks[0].Title)
	assert.Equal(t, "tomorrow", *got.Tasks[0].DueDate)
	assert.Equal(t, "Task B", got.Tasks[1].Title)
	assert.Equal(t, "next week", *got.Tasks[1].DueDate)
}

func TestNewProcessingResult_DropsTasksWithoutTitle(t *testing.T) {
	raw := []transcript.RawTask{
		{Title: nil, DueDate: strPtr("today")},
		{Title: strPtr(""), DueDate: strPtr("today")},
		{Title: strPtr("   ")},
		{Title: strPtr("Keep me")},
	}

	got, err := transcript.NewProcessingResult("Sync", nil, raw)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Keep me", got.Tasks[0].Title)
	assert.False(t, got.Tasks[0].HasDueDate())
}

func TestNewProcessingResult_EmptySummary(t *testing.T) {
	for _, summary := range []string{"", "   ", "\n\t"} {
		_, err := transcript.NewProcessingResult(summary, []string{"Valid decision"}, []transcript.RawTask{{Title: strPtr("Valid task")}})
		require.Error(t, err)

		var vErr *transcript.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "summary empty", vErr.Reason)
		assert.ErrorIs(t, err, transcript.ErrEmptySummary)
	}
}

func TestNewProcessingResult_EmptyListsAreNonNil(t *testing.T) {
	got, err := transcript.NewProcessingResult(" Summary ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Summary", got.Summary)
	assert.NotNil(t, got.Decisions)
	assert.NotNil(t, got.Tasks)
	assert.Empty(t, got.Decisions)
	assert.Empty(t, got.Tasks)
}

func TestNewProcessingResult_Idempotent(t *testing.T) {
	first, err := transcript.NewProcessingResult("Sync", []string{"A", "B"}, []transcript.RawTask{
		{Title: strPtr("T1"), DueDate: strPtr("2024-05-01")},
		{Title: strPtr("T2")},
	})
	require.NoError(t, err)

	raw := make([]transcript.RawTask, 0, len(first.Tasks))
	for _, task := range first.Tasks {
		title := task.Title
		raw = append(raw, transcript.RawTask{Title: &title, DueDate: task.DueDate})
	}

	second, err := transcript.NewProcessingResult(first.Summary, first.Decisions, raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestErrors(t *testing.T) {
	cause := errors.New("boom")

	gErr := &transcript.GatewayError{Err: cause}
	assert.ErrorIs(t, gErr, cause)
	assert.Contains(t, gErr.Error(), "boom")

	vErr := &transcript.ValidationError{Reason: "empty transcript", Err: transcript.ErrEmptyInput}
	assert.ErrorIs(t, vErr, transcript.ErrEmptyInput)
	assert.Equal(t, "validation failed: empty transcript: transcript is empty", vErr.Error())

	bare := &transcript.ValidationError{Reason: "tasks must be an array"}
	assert.Equal(t, "validation failed: tasks must be an array", bare.Error())
}
