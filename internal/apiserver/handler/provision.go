package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TriggerProvision runs the daily provisioner on demand. Super admin only.
func (h *Handler) TriggerProvision(c *gin.Context) {
	if err := h.provisioner.Run(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "provision run completed"})
}
