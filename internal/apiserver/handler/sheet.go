package handler

import (
	"net/http"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/gin-gonic/gin"
)

// CreateSheet registers a new tracking sheet. Super admin only.
func (h *Handler) CreateSheet(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req dto.SheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.SheetName == "" || req.SheetLink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sheet_name and sheet_link are required"})
		return
	}

	id, err := h.gen.NextSheetID(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	sheet := &database.Sheet{
		ID:         id,
		SheetName:  req.SheetName,
		SheetLink:  req.SheetLink,
		Department: req.Department,
		PCName:     req.PCName,
		SheetOwner: req.SheetOwner,
		UserID:     claims.UserID,
	}
	if err := h.db.CreateSheet(c.Request.Context(), sheet); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sheet)
}

// ListSheets returns all sheets.
func (h *Handler) ListSheets(c *gin.Context) {
	sheets, err := h.db.ListSheets(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheets)
}

// GetSheet returns a single sheet by ID.
func (h *Handler) GetSheet(c *gin.Context) {
	sheet, err := h.db.GetSheetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// UpdateSheet updates a sheet. Super admin only.
func (h *Handler) UpdateSheet(c *gin.Context) {
	var req dto.SheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sheet, err := h.db.GetSheetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if req.SheetName != "" {
		sheet.SheetName = req.SheetName
	}
	if req.SheetLink != "" {
		sheet.SheetLink = req.SheetLink
	}
	if req.Department != "" {
		sheet.Department = req.Department
	}
	if req.PCName != "" {
		sheet.PCName = req.PCName
	}
	if req.SheetOwner != "" {
		sheet.SheetOwner = req.SheetOwner
	}

	if err := h.db.UpdateSheet(c.Request.Context(), sheet); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// DeleteSheet removes a sheet. Super admin only.
func (h *Handler) DeleteSheet(c *gin.Context) {
	if err := h.db.DeleteSheet(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sheet deleted"})
}
