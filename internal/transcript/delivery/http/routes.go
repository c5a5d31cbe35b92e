package http

import (
	"github.com/gin-gonic/gin"

	"syncnotes/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route goes through APIKey and RateLimit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	transcripts := rg.Group("/transcripts")
	{
		transcripts.POST("/process", mw.APIKey(), mw.RateLimit(), h.Process)
	}
}
