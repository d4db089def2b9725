package model

import "time"

// InventoryItem represents a donation item tracked by quantity.
type InventoryItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Condition   string     `json:"condition"`
	Status      string     `json:"status"`
	Quantity    int        `json:"quantity"`
	Location    string     `json:"location"`
	DateAdded   string     `json:"dateAdded"`
	Description string     `json:"description,omitempty"`
	ImageMime   string     `json:"image_mime,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Item statuses, mutated by stock and assignment actions rather than edits.
const (
	ItemAvailable = "available"
	ItemReserved  = "reserved"
	ItemAssigned  = "assigned"
)

// Item conditions.
const (
	ConditionNew       = "New"
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
)

// ItemEvent is one entry in an item's ordered history. Stock adjustments carry
// a type, quantity and reason; plain notes carry only the action text.
type ItemEvent struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Action   string    `json:"action,omitempty"`
	User     string    `json:"user,omitempty"`
}

// Stock actions.
const (
	StockAdd    = "add"
	StockRemove = "remove"
	StockNote   = "note"
)

// stockReasons maps each stock action to its valid reason codes.
var stockReasons = map[string][]string{
	StockAdd:    {"donation", "purchase", "return", "correction"},
	StockRemove: {"assigned", "damaged", "lost", "correction"},
}

// StockReasons returns the valid reason codes for a stock action.
func StockReasons(action string) []string {
	return stockReasons[action]
}

// ValidStockReason reports whether reason is valid for the given action.
func ValidStockReason(action, reason string) bool {
	for _, r := range stockReasons[action] {
		if r == reason {
			return true
		}
	}
	return false
}
