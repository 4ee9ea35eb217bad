package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"calendar-grid/internal/calendar"
	"calendar-grid/internal/model"
)

const (
	defaultPanelID = "default"
	headerUserID   = "X-User-ID"
)

// processRangeReq binds and validates the range query parameters.
func (h *handler) processRangeReq(c *gin.Context) (rangeReq, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListEventsReq binds the list query and the caller's panel scope.
func (h *handler) processListEventsReq(c *gin.Context) (listEventsReq, model.Scope, error) {
	var req listEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}
	return req, scopeOf(c, req.PanelID), req.validate()
}

// scopeOf identifies the panel a fetch comes from. Anonymous callers are told
// apart by client address so they never share a generation.
func scopeOf(c *gin.Context, panelID string) model.Scope {
	sc := model.Scope{UserID: c.GetHeader(headerUserID), PanelID: panelID}
	if sc.UserID == "" {
		sc.UserID = "ip:" + c.ClientIP()
	}
	if sc.PanelID == "" {
		sc.PanelID = defaultPanelID
	}
	return sc
}

func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateEventReq binds and validates the create event body.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCreateFromSelectionReq(c *gin.Context) (createFromSelectionReq, error) {
	var req createFromSelectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSlotReq(c *gin.Context) (slotReq, error) {
	var req slotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processMoveSelectionReq binds the move body plus the session id URI param.
func (h *handler) processMoveSelectionReq(c *gin.Context) (moveSelectionReq, error) {
	var req moveSelectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, fmt.Errorf("%w: id is required", calendar.ErrInvalidPayload)
	}
	return req, req.validate()
}
