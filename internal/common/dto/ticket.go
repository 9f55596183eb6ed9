package dto

import "time"

// CreateTicketRequest represents a ticket creation payload.
// AssignedTo is the username of the person the ticket is routed to.
type CreateTicketRequest struct {
	AssignedTo string `json:"ticket_assigned_to_pc"`
	DueDate    string `json:"due_date"`
	Issue      string `json:"ticket_issue"`
}

// UpdateTicketRequest represents a ticket update by its assignee.
// A non-nil ActualCompletionDate closes the ticket.
type UpdateTicketRequest struct {
	ActualCompletionDate *time.Time `json:"actual_completion_date"`
	Remarks              string     `json:"remarks"`
}
