package handler

import (
	"net/http"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AddEmployee creates an employee account. Super admin only.
func (h *Handler) AddEmployee(c *gin.Context) {
	var req dto.AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}
	if err := h.checkEmailFree(c, req.Email, ""); err != nil {
		h.respondError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.respondError(c, err)
		return
	}
	id, err := h.gen.NextUserID(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = cnst.RoleUser
	}
	user := &database.User{
		ID:               id,
		Username:         req.Username,
		Email:            req.Email,
		Password:         string(hashed),
		Role:             role,
		Location:         req.Location,
		Designation:      req.Designation,
		ExperienceLevel:  req.ExperienceLevel,
		Department:       req.Department,
		ReportingManager: req.ReportingManager,
		Company:          req.Company,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ListEmployees returns all employees. Super admin only.
func (h *Handler) ListEmployees(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetEmployee returns one employee. Callers may read themselves; only a
// super admin may read others.
func (h *Handler) GetEmployee(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if claims.UserID != id && !isSuperAdmin(claims) {
		h.respondError(c, cnst.ErrForbidden)
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateEmployee updates an employee. Self or super admin. Password is
// rehashed only when provided; a non-nil WorkingSheet replaces the sheet
// assignment list.
func (h *Handler) UpdateEmployee(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if claims.UserID != id && !isSuperAdmin(claims) {
		h.respondError(c, cnst.ErrForbidden)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if req.Email != "" && req.Email != user.Email {
		if err := h.checkEmailFree(c, req.Email, user.ID); err != nil {
			h.respondError(c, err)
			return
		}
		user.Email = req.Email
	}
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.respondError(c, err)
			return
		}
		user.Password = string(hashed)
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Designation != "" {
		user.Designation = req.Designation
	}
	if req.ExperienceLevel != "" {
		user.ExperienceLevel = req.ExperienceLevel
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.ReportingManager != "" {
		user.ReportingManager = req.ReportingManager
	}
	if req.Company != "" {
		user.Company = req.Company
	}
	if req.WorkingSheet != nil {
		user.WorkingSheet = req.WorkingSheet
	}

	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteEmployee removes an employee account. Super admin only.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	if err := h.db.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee deleted"})
}
