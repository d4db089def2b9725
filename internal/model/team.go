package model

import "time"

// Team is a read/display model: teams are seeded, not form-edited.
type Team struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Lead              string           `json:"lead"`
	LeadID            string           `json:"leadId"`
	Description       string           `json:"description,omitempty"`
	Members           []TeamMember     `json:"members,omitempty"`
	ActiveRequests    []RequestSummary `json:"activeRequests,omitempty"`
	CompletedRequests []RequestSummary `json:"completedRequests,omitempty"`
	Skills            []string         `json:"skills,omitempty"`
	Schedule          map[string]bool  `json:"schedule,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// TeamMember is one entry in a team's roster.
type TeamMember struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	JoinDate string   `json:"joinDate,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

// RequestSummary is the request projection shown on a team page.
type RequestSummary struct {
	ID     string `json:"id"`
	Client string `json:"client"`
	Type   string `json:"type"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status"`
}

// Weekdays in schedule order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
