package http

import (
	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
)

// --- Request DTOs ---

type processReq struct {
	Transcript string `json:"transcript"`
	Schedule   bool   `json:"schedule"`
}

// An empty transcript is left to the use case so it reports a validation error.
func (r processReq) validate() error {
	if len(r.Transcript) > maxTranscriptBytes {
		return errTranscriptTooLarge
	}
	return nil
}

func (r processReq) toInput() transcript.ProcessInput {
	return transcript.ProcessInput{Transcript: r.Transcript}
}

// --- Response DTOs ---

type taskResp struct {
	Title   string  `json:"title"`
	DueDate *string `json:"due_date"`
}

type scheduleResp struct {
	Scheduled []schedule.ScheduledTask `json:"scheduled"`
	Skipped   []schedule.SkippedTask   `json:"skipped"`
	Failed    []schedule.FailedTask    `json:"failed"`
}

type processResp struct {
	Summary   string        `json:"summary"`
	Decisions []string      `json:"decisions"`
	Tasks     []taskResp    `json:"tasks"`
	Schedule  *scheduleResp `json:"schedule,omitempty"`
}

func (h *handler) newProcessResp(result transcript.ProcessingResult) processResp {
	decisions := result.Decisions
	if decisions == nil {
		decisions = []string{}
	}

	tasks := make([]taskResp, len(result.Tasks))
	for i, t := range result.Tasks {
		tasks[i] = taskResp{Title: t.Title, DueDate: t.DueDate}
	}

	return processResp{
		Summary:   result.Summary,
		Decisions: decisions,
		Tasks:     tasks,
	}
}

func newScheduleResp(out schedule.ScheduleOutput) *scheduleResp {
	return &scheduleResp{
		Scheduled: out.Scheduled,
		Skipped:   out.Skipped,
		Failed:    out.Failed,
	}
}
