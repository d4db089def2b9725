package model

import "time"

// Client represents a household receiving support.
type Client struct {
	ID                string     `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Address           string     `json:"address,omitempty"`
	City              string     `json:"city,omitempty"`
	PostalCode        string     `json:"postalCode,omitempty"`
	LanguagesSpoken   string     `json:"languagesSpoken,omitempty"`
	CountryOfOrigin   string     `json:"countryOfOrigin,omitempty"`
	StatusInCanada    string     `json:"statusInCanada"`
	HousingType       string     `json:"housingType"`
	HasTransportation bool       `json:"hasTransportation"`
	NumberOfAdults    int        `json:"numberOfAdults"`
	NumberOfChildren  int        `json:"numberOfChildren"`
	ChildrenAges      string     `json:"childrenAges,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.FirstName + " " + c.LastName
}

// Client statuses in Canada.
const (
	ClientStatusRefugee       = "refugee"
	ClientStatusRecentArrival = "recent-arrival"
	ClientStatusLowIncome     = "low-income"
)

// Housing types.
const (
	HousingApartment = "Apartment"
	HousingHouse     = "House"
	HousingTownhouse = "Townhouse"
	HousingShelter   = "Shelter"
	HousingTemporary = "Temporary"
)
