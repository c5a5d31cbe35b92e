package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// processProcessReq binds the process request body. The body is capped before decoding.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)

	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errTranscriptTooLarge
		}
		return req, errWrongBody
	}
	return req, req.validate()
}
