package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-grid/internal/calendar"
	"calendar-grid/pkg/response"
)

// Range godoc
// @Summary     Compute the visible date range
// @Description Returns the interval and day columns of a view anchored on a reference date.
// @Tags        Calendar
// @Produce     json
// @Param       view query string false "day, work-week, week, month or list (default: week)"
// @Param       date query string false "YYYY-MM-DD, RFC3339 or relative (today, next monday)"
// @Success     200 {object} rangeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/range [GET]
func (h *handler) Range(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Range(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Range: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRangeResp(output))
}

// Slots godoc
// @Summary     List the grid slots
// @Description Returns the time slot rows of the day grid in the effective timezone.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} slotsResp
// @Router      /api/v1/calendar/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	response.OK(c, h.newSlotsResp(h.uc.Slots(c.Request.Context())))
}

// ListEvents godoc
// @Summary     List events bucketed by day
// @Description Fetches the events of a view and groups them under its day columns.
// @Description A fetch overtaken by a newer one from the same panel returns 409.
// @Tags        Calendar
// @Produce     json
// @Param       view      query  string false "View type (default: week)"
// @Param       date      query  string false "Reference date"
// @Param       providers query  string false "Comma separated providers"
// @Param       limit     query  int    false "Maximum events to fetch"
// @Param       no_cache  query  bool   false "Bypass the event cache"
// @Param       panel_id  query  string false "Calendar panel issuing the fetch"
// @Param       X-User-ID header string false "Caller id"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Superseded by a newer fetch"
// @Failure     424 {object} response.Resp "No active calendar integration"
// @Failure     502 {object} response.Resp "Calendar source failed"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEvents(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// CreateEvent godoc
// @Summary     Create an event
// @Description Persists an event through the calendar source. On rejection the submitted draft is echoed back.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createEventReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     424 {object} response.Resp "No active calendar integration"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Creation rejected; data.draft holds the submission"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		h.createError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// CreateFromSelection godoc
// @Summary     Create an event from a selection
// @Description Derives the interval of a committed slot selection and creates an event over it.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createFromSelectionReq true "Selection and event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     424 {object} response.Resp "No active calendar integration"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Creation rejected; data.draft holds the submission"
// @Router      /api/v1/calendar/events/from-selection [POST]
func (h *handler) CreateFromSelection(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateFromSelectionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromSelection(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromSelection: %v", err)
		h.createError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

func (h *handler) createError(c *gin.Context, err error) {
	var cerr *calendar.CreateError
	if errors.As(err, &cerr) {
		response.Error(c, h.mapError(err), newDraftResp(cerr.Draft))
		return
	}
	response.Error(c, h.mapError(err), nil)
}

// ExportICS godoc
// @Summary     Export a view as iCalendar
// @Description Renders the events of a view as a text/calendar document.
// @Tags        Calendar
// @Produce     plain
// @Param       view      query string false "View type (default: week)"
// @Param       date      query string false "Reference date"
// @Param       providers query string false "Comma separated providers"
// @Success     200 {string} string "text/calendar body"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No events in range"
// @Failure     424 {object} response.Resp "No active calendar integration"
// @Failure     502 {object} response.Resp "Calendar source failed"
// @Router      /api/v1/calendar/export.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportICS(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Body)
}

// BeginSelection godoc
// @Summary     Start a drag selection
// @Description Pointer-down on a slot: opens a gesture session anchored on (day, index).
// @Tags        Selection
// @Accept      json
// @Produce     json
// @Param       body body slotReq true "Day and slot index"
// @Success     200 {object} selectionStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/selections [POST]
func (h *handler) BeginSelection(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.BeginSelection(ctx, req.toBeginInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSelectionStateResp(output))
}

// MoveSelection godoc
// @Summary     Extend a drag selection
// @Description Pointer-move, either over a slot (day, index) or by raw pointer coordinates.
// @Description Moves over another day column are ignored.
// @Tags        Selection
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Selection session id"
// @Param       body body moveSelectionReq true "Slot or pointer position"
// @Success     200 {object} selectionStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/selections/{id} [PATCH]
func (h *handler) MoveSelection(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveSelectionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.MoveSelection(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSelectionStateResp(output))
}

// ReleaseSelection godoc
// @Summary     Commit a drag selection
// @Description Pointer-up: ends the session and returns the normalized selection and its interval.
// @Tags        Selection
// @Produce     json
// @Param       id path string true "Selection session id"
// @Success     200 {object} releaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/selections/{id}/release [POST]
func (h *handler) ReleaseSelection(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ReleaseSelection(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReleaseResp(output))
}

// CancelSelection godoc
// @Summary     Cancel a drag selection
// @Tags        Selection
// @Produce     json
// @Param       id path string true "Selection session id"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/selections/{id} [DELETE]
func (h *handler) CancelSelection(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CancelSelection(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// ClickSelection godoc
// @Summary     Click-to-create selection
// @Description A single click on a slot selects a 30 minute block starting there.
// @Tags        Selection
// @Accept      json
// @Produce     json
// @Param       body body slotReq true "Day and slot index"
// @Success     200 {object} releaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/selections/click [POST]
func (h *handler) ClickSelection(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ClickSelection(ctx, req.toClickInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReleaseResp(output))
}
