package model

import "time"

// Dashboard holds the landing-page stat cards and the recent activity feed.
// Every value is derived live from the underlying tables.
type Dashboard struct {
	TotalClients     int        `json:"totalClients"`
	ActiveVolunteers int        `json:"activeVolunteers"`
	InventoryItems   int        `json:"inventoryItems"`
	PendingRequests  int        `json:"pendingRequests"`
	RecentActivity   []Activity `json:"recentActivity"`
}

// Activity is one recent-activity entry sourced from the request and
// inventory history logs. Subject is the entity the event belongs to.
type Activity struct {
	Date    time.Time `json:"date"`
	Subject string    `json:"subject"`
	Action  string    `json:"action"`
	User    string    `json:"user"`
}
