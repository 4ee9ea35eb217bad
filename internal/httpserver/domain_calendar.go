package httpserver

import (
	"context"

	calendarHTTP "calendar-grid/internal/calendar/delivery/http"
	calendarUC "calendar-grid/internal/calendar/usecase"
	"calendar-grid/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupCalendarDomain wires source → usecase → handler and registers
// /api/v1/calendar/*.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := calendarUC.New(srv.l, srv.calendarSource, srv.calendarOptions)
	h := calendarHTTP.New(srv.l, uc)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, mw)

	if srv.calendarSource.Active() {
		srv.l.Infof(ctx, "Calendar domain registered (source: %s)", srv.calendarSource.Name())
	} else {
		srv.l.Warnf(ctx, "Calendar domain registered without an active source (%s): event routes will answer 424", srv.calendarSource.Name())
	}
	return nil
}
