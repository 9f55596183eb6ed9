package handler

import (
	"errors"
	"net/http"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/gin-gonic/gin"
)

// CreateDepartment registers a department. Super admin only.
func (h *Handler) CreateDepartment(c *gin.Context) {
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.DepartmentName == "" || req.DepartmentHOD == "" || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department_name, department_hod and userId are required"})
		return
	}
	if _, err := h.db.GetUserByID(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, cnst.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId does not reference an existing user"})
			return
		}
		h.respondError(c, err)
		return
	}

	id, err := h.gen.NextDepartmentID(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	department := &database.Department{
		ID:             id,
		DepartmentName: req.DepartmentName,
		DepartmentHOD:  req.DepartmentHOD,
		UserID:         req.UserID,
	}
	if err := h.db.CreateDepartment(c.Request.Context(), department); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

// ListDepartments returns all departments.
func (h *Handler) ListDepartments(c *gin.Context) {
	departments, err := h.db.ListDepartments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// GetDepartment returns one department by ID.
func (h *Handler) GetDepartment(c *gin.Context) {
	department, err := h.db.GetDepartmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// UpdateDepartment updates a department. Super admin only.
func (h *Handler) UpdateDepartment(c *gin.Context) {
	var req dto.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	department, err := h.db.GetDepartmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if req.DepartmentName != "" {
		department.DepartmentName = req.DepartmentName
	}
	if req.DepartmentHOD != "" {
		department.DepartmentHOD = req.DepartmentHOD
	}
	if req.UserID != "" && req.UserID != department.UserID {
		if _, err := h.db.GetUserByID(c.Request.Context(), req.UserID); err != nil {
			if errors.Is(err, cnst.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "userId does not reference an existing user"})
				return
			}
			h.respondError(c, err)
			return
		}
		department.UserID = req.UserID
	}

	if err := h.db.UpdateDepartment(c.Request.Context(), department); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// DeleteDepartment removes a department. Super admin only.
func (h *Handler) DeleteDepartment(c *gin.Context) {
	if err := h.db.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "department deleted"})
}
