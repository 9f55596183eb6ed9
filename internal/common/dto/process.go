package dto

import "time"

// CallUpdate represents one call-slot update on a process row.
// Timestamp is optional; when omitted the server clock is used.
type CallUpdate struct {
	CallNumber int        `json:"callNumber"`
	Attended   bool       `json:"attended"`
	Reason     string     `json:"reason"`
	Outcome    string     `json:"outcome"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

// UpdateProcessRequest represents a batch of call updates for one process
type UpdateProcessRequest struct {
	Calls []CallUpdate `json:"calls"`
}
