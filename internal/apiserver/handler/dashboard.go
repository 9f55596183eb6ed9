package handler

import (
	"net/http"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/apiserver/stats"
	"github.com/workdesk/backoffice/internal/common/cnst"

	"github.com/gin-gonic/gin"
)

// userProcessStats pairs one user with their process summary.
type userProcessStats struct {
	UserID   string             `json:"userId"`
	Username string             `json:"username"`
	Stats    stats.ProcessStats `json:"stats"`
}

// userTaskStats pairs one user with their task summary and rank.
type userTaskStats struct {
	UserID   string          `json:"userId"`
	Username string          `json:"username"`
	Stats    stats.TaskStats `json:"stats"`
	Ranking  int             `json:"ranking"`
}

// ProcessDashboard returns the caller's call progress for today along with
// the underlying rows.
func (h *Handler) ProcessDashboard(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	rows, err := h.db.ListProcessesByUserAndDay(c.Request.Context(), claims.UserID, h.today())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":     stats.ProcessSummary(rows),
		"processes": rows,
	})
}

// FleetProcessDashboard returns today's call progress for every non-admin
// user. Super admin only.
func (h *Handler) FleetProcessDashboard(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	day := h.today()
	result := make([]userProcessStats, 0, len(users))
	for _, user := range users {
		if user.Role == cnst.RoleSuperAdmin {
			continue
		}
		rows, err := h.db.ListProcessesByUserAndDay(c.Request.Context(), user.ID, day)
		if err != nil {
			h.respondError(c, err)
			return
		}
		result = append(result, userProcessStats{
			UserID:   user.ID,
			Username: user.Username,
			Stats:    stats.ProcessSummary(rows),
		})
	}
	c.JSON(http.StatusOK, result)
}

// FleetProcessRangeDashboard is FleetProcessDashboard over a date bucket
// (filterType) or an explicit fromDate/toDate pair. Super admin only.
func (h *Handler) FleetProcessRangeDashboard(c *gin.Context) {
	from, to, err := stats.ResolveRange(
		c.Query("filterType"), c.Query("fromDate"), c.Query("toDate"),
		h.clock.Now(), h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	result := make([]userProcessStats, 0, len(users))
	for _, user := range users {
		if user.Role == cnst.RoleSuperAdmin {
			continue
		}
		rows, err := h.db.ListProcessesByUserInRange(c.Request.Context(), user.ID, from, to)
		if err != nil {
			h.respondError(c, err)
			return
		}
		result = append(result, userProcessStats{
			UserID:   user.ID,
			Username: user.Username,
			Stats:    stats.ProcessSummary(rows),
		})
	}
	c.JSON(http.StatusOK, result)
}

// TaskDashboard returns the caller's task summary and fleet-wide rank.
func (h *Handler) TaskDashboard(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	allTasks, err := h.db.ListTasks(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	visible := allTasks
	if !isSuperAdmin(claims) {
		visible = visibleTasks(allTasks, claims.UserID)
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":   stats.TaskSummary(visible, h.clock.Now()),
		"ranking": stats.Ranking(allTasks, claims.UserID),
	})
}

// FleetTaskDashboard returns each non-admin user's task summary and rank.
// Super admin only.
func (h *Handler) FleetTaskDashboard(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	allTasks, err := h.db.ListTasks(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	now := h.clock.Now()
	result := make([]userTaskStats, 0, len(users))
	for _, user := range users {
		if user.Role == cnst.RoleSuperAdmin {
			continue
		}
		result = append(result, userTaskStats{
			UserID:   user.ID,
			Username: user.Username,
			Stats:    stats.TaskSummary(visibleTasks(allTasks, user.ID), now),
			Ranking:  stats.Ranking(allTasks, user.ID),
		})
	}
	c.JSON(http.StatusOK, result)
}

// visibleTasks filters to the tasks a regular user can see: ones they
// created or are assigned to.
func visibleTasks(tasks []*database.Task, userID string) []*database.Task {
	var out []*database.Task
	for _, t := range tasks {
		if t.UserID == userID || t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out
}
