package http

import (
	"context"
	"errors"
	"net/http"

	"syncnotes/internal/metrics"
	"syncnotes/internal/schedule"
	"syncnotes/internal/transcript"
	pkgErrors "syncnotes/pkg/errors"
	"syncnotes/pkg/llmjson"
)

const (
	// maxTranscriptBytes bounds the request body's transcript field.
	maxTranscriptBytes = 1 << 20

	// maxRequestBytes bounds the raw body; JSON escaping can inflate a transcript.
	maxRequestBytes = 4 * maxTranscriptBytes
)

// Application error codes carried in response.Resp.ErrorCode.
const (
	codeWrongBody          = 10000
	codeEmptyTranscript    = 10001
	codeInvalidResult      = 10002
	codeGatewayFailed      = 10003
	codeMalformedResponse  = 10004
	codeCalendarDisabled   = 10005
	codeTranscriptTooLarge = 10006
	codeGatewayTimeout     = 10007
)

var (
	errWrongBody          = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeWrongBody, "Wrong body")
	errTranscriptTooLarge = pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeTranscriptTooLarge, "Transcript too large")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Order matters: a malformed model response is also a ValidationError.
func (h *handler) mapError(err error) error {
	var (
		malformed  *llmjson.MalformedResponseError
		validation *transcript.ValidationError
		gateway    *transcript.GatewayError
	)

	switch {
	case errors.Is(err, transcript.ErrEmptyInput):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusUnprocessableEntity, codeEmptyTranscript, "Transcript is empty")
	case errors.As(err, &malformed):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, codeMalformedResponse, "Model returned malformed output")
	case errors.As(err, &validation):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusUnprocessableEntity, codeInvalidResult, validation.Error())
	case errors.As(err, &gateway) && errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusGatewayTimeout, codeGatewayTimeout, "Model provider timed out")
	case errors.As(err, &gateway):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadGateway, codeGatewayFailed, "Model provider unavailable")
	case errors.Is(err, schedule.ErrCalendarDisabled):
		return pkgErrors.NewHTTPErrorWithCode(http.StatusBadRequest, codeCalendarDisabled, "Calendar export is not configured")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// outcome classifies a Process error for metrics.
func outcome(err error) string {
	var (
		malformed  *llmjson.MalformedResponseError
		validation *transcript.ValidationError
		gateway    *transcript.GatewayError
	)

	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &malformed):
		return metrics.OutcomeMalformedResponse
	case errors.As(err, &validation):
		return metrics.OutcomeValidationError
	case errors.As(err, &gateway):
		return metrics.OutcomeGatewayError
	default:
		return metrics.OutcomeError
	}
}
