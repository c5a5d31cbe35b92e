package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
	"syncnotes/pkg/response"
)

// Process godoc
// @Summary     Process a meeting transcript
// @Description Extracts a summary, decisions and action items from a raw transcript.
// @Description With "schedule": true, tasks with a resolvable deadline are also added to the calendar.
// @Tags        Transcripts
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string     false "API key, required when the server has one configured"
// @Param       body      body   processReq true  "Transcript"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     422 {object} response.Resp "Empty transcript or unusable model output"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Model provider failure or malformed output"
// @Failure     504 {object} response.Resp "Model provider timeout"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transcripts/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Schedule && h.scheduler == nil {
		response.Error(c, h.mapError(schedule.ErrCalendarDisabled))
		return
	}

	start := time.Now()
	result, err := h.uc.Process(ctx, req.toInput())
	h.recordProcess(start, result, err)
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := h.newProcessResp(result)

	if req.Schedule {
		out, err := h.scheduler.Schedule(ctx, schedule.ScheduleInput{
			Tasks:   result.Tasks,
			Summary: result.Summary,
		})
		if err != nil && !errors.Is(err, schedule.ErrAllFailed) {
			h.l.Errorf(ctx, "scheduler.Schedule: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		if err != nil {
			h.l.Warnf(ctx, "scheduler.Schedule: %v", err)
		}
		if h.metrics != nil {
			h.metrics.RecordSchedule(len(out.Scheduled), len(out.Skipped), len(out.Failed))
		}
		resp.Schedule = newScheduleResp(out)
	}

	response.OK(c, resp)
}

func (h *handler) recordProcess(start time.Time, result transcript.ProcessingResult, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecordProcess(outcome(err), time.Since(start).Seconds())
	if err == nil {
		h.metrics.RecordExtracted(len(result.Decisions), len(result.Tasks))
	}
}
