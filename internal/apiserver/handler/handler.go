// Package handler implements the HTTP API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/apiserver/idgen"
	"github.com/workdesk/backoffice/internal/apiserver/middleware"
	"github.com/workdesk/backoffice/internal/apiserver/provision"
	"github.com/workdesk/backoffice/internal/auth/jwt"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/notifier"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	db          database.Database
	jwtService  *jwt.Service
	notifier    notifier.Notifier
	gen         *idgen.Generator
	clock       provision.Clock
	loc         *time.Location
	provisioner *provision.Provisioner
	logger      *zap.Logger
}

func NewHandler(
	db database.Database,
	jwtService *jwt.Service,
	n notifier.Notifier,
	gen *idgen.Generator,
	clock provision.Clock,
	loc *time.Location,
	provisioner *provision.Provisioner,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		db:          db,
		jwtService:  jwtService,
		notifier:    n,
		gen:         gen,
		clock:       clock,
		loc:         loc,
		provisioner: provisioner,
		logger:      logger.Named("handler"),
	}
}

// claims returns the authenticated claims or aborts with 401.
func (h *Handler) claims(c *gin.Context) (*jwt.Claims, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	return claims, true
}

func isSuperAdmin(claims *jwt.Claims) bool {
	return claims.Role == cnst.RoleSuperAdmin
}

// respondError maps the shared sentinel errors onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cnst.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, cnst.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, cnst.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
	case errors.Is(err, cnst.ErrInvalidCallNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": "call number must be 1, 2 or 3"})
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// notify sends an e-mail off the request path. Failures are logged, never
// surfaced to the caller.
func (h *Handler) notify(to, subject, textBody, htmlBody string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.notifier.Send(ctx, to, subject, textBody, htmlBody); err != nil {
			h.logger.Warn("notification failed", zap.String("to", to), zap.Error(err))
		}
	}()
}

// parseDueTime accepts RFC 3339 or a bare date in the service timezone.
func (h *Handler) parseDueTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, h.loc)
}

// today returns the current civil day in the service timezone.
func (h *Handler) today() string {
	return h.clock.Now().In(h.loc).Format("2006-01-02")
}
