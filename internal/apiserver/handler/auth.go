package handler

import (
	"errors"
	"net/http"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account with the user role and returns a token.
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
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
	if _, err := h.db.GetUserByUsername(c.Request.Context(), req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		return
	} else if !errors.Is(err, cnst.ErrNotFound) {
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

	user := &database.User{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     cnst.RoleUser,
	}
	if err := h.db.CreateUser(c.Request.Context(), user); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token: token,
		User:  dto.UserInfo{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}

// Login verifies email and password and returns a token.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, cnst.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.respondError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserInfo{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}

// Me returns the caller's profile.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	user, err := h.db.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the caller's own profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), claims.UserID)
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

	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers returns all accounts. Super admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// checkEmailFree returns ErrDuplicateEmail when email belongs to a different
// user than excludeID.
func (h *Handler) checkEmailFree(c *gin.Context, email, excludeID string) error {
	existing, err := h.db.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, cnst.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return cnst.ErrDuplicateEmail
}
