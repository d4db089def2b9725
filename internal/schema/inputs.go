package schema

import "github.com/hwfottawa/hwfadmin/internal/model"

// ClientInput is the client intake/edit form payload.
type ClientInput struct {
	FirstName         string `json:"firstName" validate:"required,min=2"`
	LastName          string `json:"lastName" validate:"required,min=2"`
	Email             string `json:"email" validate:"omitempty,email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	City              string `json:"city"`
	PostalCode        string `json:"postalCode"`
	LanguagesSpoken   string `json:"languagesSpoken"`
	CountryOfOrigin   string `json:"countryOfOrigin"`
	StatusInCanada    string `json:"statusInCanada" validate:"required,oneof=refugee recent-arrival low-income"`
	HousingType       string `json:"housingType" validate:"required,oneof=Apartment House Townhouse Shelter Temporary"`
	HasTransportation bool   `json:"hasTransportation"`
	NumberOfAdults    Count  `json:"numberOfAdults"`
	NumberOfChildren  Count  `json:"numberOfChildren"`
	ChildrenAges      string `json:"childrenAges"`
}

// Record normalizes the validated input into a client record. Household
// counts clamp to their floors (adults 1, children 0).
func (in *ClientInput) Record() *model.Client {
	return &model.Client{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		Address:           in.Address,
		City:              in.City,
		PostalCode:        in.PostalCode,
		LanguagesSpoken:   in.LanguagesSpoken,
		CountryOfOrigin:   in.CountryOfOrigin,
		StatusInCanada:    in.StatusInCanada,
		HousingType:       in.HousingType,
		HasTransportation: in.HasTransportation,
		NumberOfAdults:    in.NumberOfAdults.Or(1),
		NumberOfChildren:  in.NumberOfChildren.Or(0),
		ChildrenAges:      in.ChildrenAges,
	}
}

// VolunteerInput is the volunteer form payload. Skills arrive as vocabulary
// tokens from the checkbox grid; persisted records carry labels.
type VolunteerInput struct {
	Name             string   `json:"name" validate:"required,min=2"`
	Email            string   `json:"email" validate:"required,email"`
	Phone            string   `json:"phone" validate:"required,min=5"`
	Address          string   `json:"address" validate:"required,min=5"`
	Skills           []string `json:"skills" validate:"required,min=1"`
	Availability     string   `json:"availability" validate:"required"`
	Status           string   `json:"status" validate:"required,oneof=active inactive pending"`
	StartDate        string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EmergencyContact string   `json:"emergencyContact" validate:"required,min=5"`
	Notes            string   `json:"notes"`
}

// Record normalizes the validated input into a volunteer record, converting
// skill tokens to display labels.
func (in *VolunteerInput) Record() *model.Volunteer {
	return &model.Volunteer{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Skills:           model.SkillLabels(in.Skills),
		Availability:     in.Availability,
		Status:           in.Status,
		StartDate:        in.StartDate,
		EmergencyContact: in.EmergencyContact,
		Notes:            in.Notes,
	}
}

// ItemInput is the inventory item form payload. Status is not part of the
// form; stock and assignment actions mutate it.
type ItemInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Condition   string `json:"condition" validate:"required,oneof=New Excellent Good Fair"`
	Quantity    Count  `json:"quantity"`
	Location    string `json:"location" validate:"required"`
	DateAdded   string `json:"dateAdded" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description"`
}

// Record normalizes the validated input into an item record. Quantity clamps
// at zero; new items start out available.
func (in *ItemInput) Record() *model.InventoryItem {
	return &model.InventoryItem{
		Name:        in.Name,
		Category:    in.Category,
		Condition:   in.Condition,
		Status:      model.ItemAvailable,
		Quantity:    in.Quantity.Or(0),
		Location:    in.Location,
		DateAdded:   in.DateAdded,
		Description: in.Description,
	}
}

// RequestInput is the service request form payload. The client identifier is
// never taken from the form: the store re-derives it from the selected client
// name on every create and update.
type RequestInput struct {
	Client      string   `json:"client" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Team        string   `json:"team"`
	AssignedTo  string   `json:"assignedTo"`
	Status      string   `json:"status" validate:"required,oneof=pending processing scheduled completed"`
	Date        string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description string   `json:"description" validate:"required"`
	Priority    string   `json:"priority" validate:"required,oneof=low medium high urgent"`
	Items       []string `json:"items"`
}

// Record normalizes the validated input into a request record with the
// client identifier left for the store to derive.
func (in *RequestInput) Record() *model.Request {
	return &model.Request{
		Client:      in.Client,
		Type:        in.Type,
		Team:        in.Team,
		AssignedTo:  in.AssignedTo,
		Status:      in.Status,
		Date:        in.Date,
		Description: in.Description,
		Priority:    in.Priority,
		Items:       in.Items,
	}
}

// StockInput is the stock control dialog payload. The valid reason codes
// depend on the action; the struct-level check enforces the pairing.
type StockInput struct {
	Action   string `json:"action" validate:"required,oneof=add remove"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"required"`
}

// AssignInput is the team assignment dialog payload. An empty member means
// "no specific person", which is a valid terminal choice.
type AssignInput struct {
	Team   string `json:"team" validate:"required"`
	Member string `json:"assignedTo"`
}
