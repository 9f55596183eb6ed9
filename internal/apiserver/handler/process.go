package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/gin-gonic/gin"
)

// ListOwnProcesses returns the caller's process rows, newest first.
func (h *Handler) ListOwnProcesses(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	processes, err := h.db.ListProcessesByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, processes)
}

// GetProcess returns one process row. Owner or super admin.
func (h *Handler) GetProcess(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	process, err := h.db.GetProcessByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if process.UserID != claims.UserID && !isSuperAdmin(claims) {
		h.respondError(c, cnst.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, process)
}

// ProcessSummaryCount reports how many process rows the caller can see:
// their own for regular users, everything for super admins.
func (h *Handler) ProcessSummaryCount(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	userID := claims.UserID
	if isSuperAdmin(claims) {
		userID = ""
	}
	count, err := h.db.CountProcesses(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// UpdateProcess applies a batch of call updates to one process row. Only
// the row's owner may update it. The batch is all or nothing: any call
// number outside 1..3 rejects the whole request before a slot is touched,
// and the slots are written in a single transaction.
func (h *Handler) UpdateProcess(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	process, err := h.db.GetProcessByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if process.UserID != claims.UserID {
		h.respondError(c, cnst.ErrForbidden)
		return
	}

	var req dto.UpdateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Calls) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calls must not be empty"})
		return
	}
	for _, call := range req.Calls {
		if call.CallNumber < 1 || call.CallNumber > 3 {
			h.respondError(c, cnst.ErrInvalidCallNumber)
			return
		}
	}

	for _, call := range req.Calls {
		applyCall(process, call, h.clock.Now())
	}

	err = h.db.Transaction(c.Request.Context(), func(txCtx context.Context) error {
		return h.db.UpdateProcess(txCtx, process)
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, process)
}

// applyCall writes one call slot. A missing timestamp defaults to now.
func applyCall(p *database.Process, call dto.CallUpdate, now time.Time) {
	ts := call.Timestamp
	if ts == nil {
		ts = &now
	}
	attended := call.Attended
	switch call.CallNumber {
	case 1:
		p.Timestamp1 = ts
		p.Call1Attended = &attended
		p.Reason1 = call.Reason
		p.Outcome1 = call.Outcome
	case 2:
		p.Timestamp2 = ts
		p.Call2Attended = &attended
		p.Reason2 = call.Reason
		p.Outcome2 = call.Outcome
	case 3:
		p.Timestamp3 = ts
		p.Call3Attended = &attended
		p.Reason3 = call.Reason
		p.Outcome3 = call.Outcome
	}
}
