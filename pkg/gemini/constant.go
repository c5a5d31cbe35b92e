package gemini

import "time"

// Defaults applied by Config.Validate.
const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

const (
	// generateContentPath is appended to the API URL, with the model name substituted.
	generateContentPath = "/models/%s:generateContent"

	// jsonMIMEType asks the model for a JSON-only answer.
	jsonMIMEType = "application/json"

	// maxErrorBody caps how much of a failed response is kept in APIError.
	maxErrorBody = 4096
)
