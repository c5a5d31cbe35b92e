package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syncnotes/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "syncnotes"
)

type healthResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

type readyResp struct {
	healthResp
	Providers      []string `json:"providers"`
	CalendarExport bool     `json:"calendar_export"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Version: HealthVersion, Service: ServiceName}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once at least one model provider is configured.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} readyResp "API is ready"
// @Failure 503 {object} response.Resp "No model provider"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	resp := readyResp{
		healthResp:     newHealthResp("ready"),
		Providers:      srv.providers,
		CalendarExport: srv.scheduleUC != nil,
	}
	if len(srv.providers) == 0 {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "No model provider configured",
		})
		return
	}
	response.OK(c, resp)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
