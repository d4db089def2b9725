package model

import "time"

// Volunteer represents a rostered volunteer. Skills hold display labels;
// the edit form works with tokens (see SkillToken/SkillLabel).
type Volunteer struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	Skills           []string   `json:"skills"`
	Availability     string     `json:"availability"`
	Status           string     `json:"status"`
	StartDate        string     `json:"startDate"`
	EmergencyContact string     `json:"emergencyContact"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// Volunteer statuses. Pending is an onboarding state reachable only at
// creation; the roster toggle only flips between active and inactive.
const (
	VolunteerActive   = "active"
	VolunteerInactive = "inactive"
	VolunteerPending  = "pending"
)
