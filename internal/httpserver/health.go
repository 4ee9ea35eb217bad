package httpserver

import (
	"time"

	"calendar-grid/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "calendar grid is up"
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-grid"
)

const (
	statusDegraded = "degraded"
)

type sourceHealth struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type healthResp struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Version  string       `json:"version"`
	Service  string       `json:"service"`
	Timezone string       `json:"timezone"`
	Source   sourceHealth `json:"source"`
}

// report describes the service identity plus the calendar source it reads from.
// Without an active source the service still answers grid routes, but event
// routes fail with 424, so the status drops to degraded.
func (srv HTTPServer) report(status string) healthResp {
	loc := srv.calendarOptions.Location
	if loc == nil {
		loc = time.Local
	}
	src := sourceHealth{Name: srv.calendarSource.Name(), Active: srv.calendarSource.Active()}
	if !src.Active {
		status = statusDegraded
	}
	return healthResp{
		Status:   status,
		Message:  HealthMessage,
		Version:  HealthVersion,
		Service:  ServiceName,
		Timezone: loc.String(),
		Source:   src,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy and which calendar source backs it
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is healthy or degraded"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.report("healthy"))
}

// readyCheck reports ready once the server is serving.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is ready or degraded"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.report("ready"))
}

// liveCheck handles liveness check requests. Liveness ignores the source.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
