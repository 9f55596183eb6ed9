package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/gin-gonic/gin"
)

// CreateTask creates a task assigned to another user by username and mails
// the assignee.
func (h *Handler) CreateTask(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.TaskName == "" || req.AssignedTo == "" || req.DueTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_name, assigned_to and due_time are required"})
		return
	}

	assignee, err := h.db.GetUserByUsername(c.Request.Context(), req.AssignedTo)
	if err != nil {
		if errors.Is(err, cnst.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "assigned user does not exist"})
			return
		}
		h.respondError(c, err)
		return
	}

	dueTime, err := h.parseDueTime(req.DueTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_time"})
		return
	}

	id, err := h.gen.NextTaskID(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	status := req.TaskStatus
	if status == "" {
		status = cnst.TaskStatusNotDone
	}
	reviewStatus := req.ReviewStatus
	if reviewStatus == "" {
		reviewStatus = "PENDING"
	}
	task := &database.Task{
		ID:                id,
		TaskName:          req.TaskName,
		AssignedTo:        assignee.ID,
		DueTime:           dueTime,
		TaskDescription:   req.TaskDescription,
		ReviewStatus:      reviewStatus,
		TaskStatus:        status,
		AdditionalComment: req.AdditionalComment,
		TaskType:          req.TaskType,
		TaskFrequency:     req.TaskFrequency,
		UserID:            claims.UserID,
	}
	if err := h.db.CreateTask(c.Request.Context(), task); err != nil {
		h.respondError(c, err)
		return
	}

	subject := fmt.Sprintf("New task assigned: %s", task.TaskName)
	body := fmt.Sprintf("%s assigned you the task %q, due %s.",
		claims.Username, task.TaskName, task.DueTime.Format("2006-01-02 15:04"))
	h.notify(assignee.Email, subject, body, "")

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns the tasks the caller can see: every task for a super
// admin, the tasks assigned to them for everyone else.
func (h *Handler) ListTasks(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var (
		tasks []*database.Task
		err   error
	)
	if isSuperAdmin(claims) {
		tasks, err = h.db.ListTasks(c.Request.Context())
	} else {
		tasks, err = h.db.ListTasksByAssignee(c.Request.Context(), claims.UserID)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask returns one task. Visible to its creator, its assignee and super
// admins.
func (h *Handler) GetTask(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	task, err := h.db.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !isSuperAdmin(claims) && task.UserID != claims.UserID && task.AssignedTo != claims.UserID {
		h.respondError(c, cnst.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask updates a task. Creator, assignee or super admin.
func (h *Handler) UpdateTask(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.db.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !isSuperAdmin(claims) && task.UserID != claims.UserID && task.AssignedTo != claims.UserID {
		h.respondError(c, cnst.ErrForbidden)
		return
	}

	if req.TaskName != "" {
		task.TaskName = req.TaskName
	}
	if req.AssignedTo != "" {
		assignee, err := h.db.GetUserByUsername(c.Request.Context(), req.AssignedTo)
		if err != nil {
			if errors.Is(err, cnst.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "assigned user does not exist"})
				return
			}
			h.respondError(c, err)
			return
		}
		task.AssignedTo = assignee.ID
	}
	if req.DueTime != "" {
		dueTime, err := h.parseDueTime(req.DueTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_time"})
			return
		}
		task.DueTime = dueTime
	}
	if req.TaskDescription != "" {
		task.TaskDescription = req.TaskDescription
	}
	if req.ReviewStatus != "" {
		task.ReviewStatus = req.ReviewStatus
	}
	if req.TaskStatus != "" {
		task.TaskStatus = req.TaskStatus
	}
	if req.AdditionalComment != "" {
		task.AdditionalComment = req.AdditionalComment
	}
	if req.TaskType != "" {
		task.TaskType = req.TaskType
	}
	if req.TaskFrequency != "" {
		task.TaskFrequency = req.TaskFrequency
	}
	if req.FinalRemarks != "" {
		task.FinalRemarks = req.FinalRemarks
	}

	if err := h.db.UpdateTask(c.Request.Context(), task); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task. Creator or super admin.
func (h *Handler) DeleteTask(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	task, err := h.db.GetTaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !isSuperAdmin(claims) && task.UserID != claims.UserID {
		h.respondError(c, cnst.ErrForbidden)
		return
	}
	if err := h.db.DeleteTask(c.Request.Context(), task.ID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
