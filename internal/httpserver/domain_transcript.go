package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"syncnotes/internal/middleware"
	transcriptHTTP "syncnotes/internal/transcript/delivery/http"
)

// setupTranscriptDomain registers /api/v1/transcripts.
func (srv *HTTPServer) setupTranscriptDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := transcriptHTTP.New(srv.l, srv.transcriptUC, srv.scheduleUC, srv.metrics)
	transcriptHTTP.RegisterRoutes(api, h, mw)

	if srv.scheduleUC != nil {
		srv.l.Infof(ctx, "Transcript domain registered, calendar export enabled")
	} else {
		srv.l.Infof(ctx, "Transcript domain registered, calendar export disabled")
	}
	return nil
}
