package handler

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/dto"

	"github.com/gin-gonic/gin"
)

// CreateTicket raises a support ticket against a user. Super admin only.
func (h *Handler) CreateTicket(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.AssignedTo == "" || req.DueDate == "" || req.Issue == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ticket_assigned_to_pc, due_date and ticket_issue are required"})
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

	ticket := &database.Ticket{
		ID:           fmt.Sprintf("tic-%d-%03d", h.clock.Now().Unix(), rand.Intn(1000)),
		AssignedTo:   assignee.Username,
		DueDate:      req.DueDate,
		TicketStatus: cnst.TicketStatusOpen,
		TicketIssue:  req.Issue,
		UserID:       claims.UserID,
	}
	if err := h.db.CreateTicket(c.Request.Context(), ticket); err != nil {
		h.respondError(c, err)
		return
	}

	subject := fmt.Sprintf("New ticket %s", ticket.ID)
	body := fmt.Sprintf("A ticket was assigned to you, due %s: %s", ticket.DueDate, ticket.TicketIssue)
	h.notify(assignee.Email, subject, body, "")

	c.JSON(http.StatusCreated, ticket)
}

// ListTickets returns every ticket. Super admin only.
func (h *Handler) ListTickets(c *gin.Context) {
	tickets, err := h.db.ListTickets(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GetTicket returns one ticket. Assignee or super admin.
func (h *Handler) GetTicket(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	ticket, err := h.db.GetTicketByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if ticket.AssignedTo != claims.Username && !isSuperAdmin(claims) {
		h.respondError(c, cnst.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// UpdateTicket records progress on a ticket. Assignee only. Setting the
// actual completion date closes an open ticket.
func (h *Handler) UpdateTicket(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok {
		return
	}
	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ticket, err := h.db.GetTicketByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if ticket.AssignedTo != claims.Username {
		h.respondError(c, cnst.ErrForbidden)
		return
	}

	if req.Remarks != "" {
		ticket.Remarks = req.Remarks
	}
	if req.ActualCompletionDate != nil {
		ticket.ActualCompletionDate = req.ActualCompletionDate
		if ticket.TicketStatus == cnst.TicketStatusOpen {
			ticket.TicketStatus = cnst.TicketStatusClose
		}
	}

	if err := h.db.UpdateTicket(c.Request.Context(), ticket); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
