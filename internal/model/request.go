package model

import "time"

// Request represents a service request raised for a client. ClientID is
// derived from the selected client name and re-derived whenever it changes.
type Request struct {
	ID          string     `json:"id"`
	Client      string     `json:"client"`
	ClientID    string     `json:"clientId"`
	Type        string     `json:"type"`
	Team        string     `json:"team,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	Status      string     `json:"status"`
	Date        string     `json:"date,omitempty"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Items       []string   `json:"items,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Request statuses. The completion toggle moves completed back to pending and
// anything else straight to completed; no strict sequencing is enforced.
const (
	RequestPending    = "pending"
	RequestProcessing = "processing"
	RequestScheduled  = "scheduled"
	RequestCompleted  = "completed"
)

// Request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// RequestEvent is one entry in a request's ordered history log.
type RequestEvent struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	Date      time.Time `json:"date"`
	Action    string    `json:"action"`
	User      string    `json:"user,omitempty"`
}
