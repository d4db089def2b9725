package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient() ClientInput {
	return ClientInput{
		FirstName:      "Maria",
		LastName:       "Rodriguez",
		Email:          "maria@example.com",
		StatusInCanada: "recent-arrival",
		HousingType:    "Apartment",
		NumberOfAdults: Count{Value: 2, Valid: true},
	}
}

func TestClientInputValid(t *testing.T) {
	in := validClient()
	require.NoError(t, Validate(&in))

	c := in.Record()
	assert.Equal(t, "Maria Rodriguez", c.Name())
	assert.Equal(t, 2, c.NumberOfAdults)
	assert.Equal(t, 0, c.NumberOfChildren)
}

func TestClientInputFieldErrors(t *testing.T) {
	in := validClient()
	in.FirstName = "M"
	in.Email = "not-an-email"
	in.StatusInCanada = "visitor"

	err := Validate(&in)
	require.Error(t, err)

	fe, ok := err.(FieldErrors)
	require.True(t, ok, "expected FieldErrors, got %T", err)
	assert.Contains(t, fe, "firstName")
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "statusInCanada")
	assert.NotContains(t, fe, "lastName")
}

func TestClientInputEmptyEmailAllowed(t *testing.T) {
	in := validClient()
	in.Email = ""
	assert.NoError(t, Validate(&in))
}

func TestClientCountClamping(t *testing.T) {
	// Malformed numeric input resolves to the field floor, not an error.
	var in ClientInput
	payload := `{
		"firstName": "Omar", "lastName": "Hassan",
		"statusInCanada": "refugee", "housingType": "Shelter",
		"numberOfAdults": "abc", "numberOfChildren": "xyz"
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))
	require.NoError(t, Validate(&in))

	c := in.Record()
	assert.Equal(t, 1, c.NumberOfAdults)
	assert.Equal(t, 0, c.NumberOfChildren)
}

func TestClientCountNegativeClampsToFloor(t *testing.T) {
	var in ClientInput
	payload := `{
		"firstName": "Li", "lastName": "Wei",
		"statusInCanada": "low-income", "housingType": "Apartment",
		"numberOfAdults": 0, "numberOfChildren": -3
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	c := in.Record()
	assert.Equal(t, 1, c.NumberOfAdults)
	assert.Equal(t, 0, c.NumberOfChildren)
}

func TestCountAcceptsNumericString(t *testing.T) {
	var in ClientInput
	require.NoError(t, json.Unmarshal([]byte(`{"numberOfChildren": " 4 "}`), &in))
	assert.Equal(t, 4, in.NumberOfChildren.Or(0))
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw   string
		floor int
		want  int
	}{
		{"3", 0, 3},
		{"abc", 0, 0},
		{"abc", 1, 1},
		{"-2", 0, 0},
		{"0", 1, 1},
		{" 5 ", 1, 5},
		{"", 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCount(tt.raw, tt.floor), "ParseCount(%q, %d)", tt.raw, tt.floor)
	}
}

func validVolunteer() VolunteerInput {
	return VolunteerInput{
		Name:             "John Smith",
		Email:            "john.smith@email.com",
		Phone:            "+1 (613) 555-8765",
		Address:          "123 Main St, Ottawa",
		Skills:           []string{"driving", "lifting", "it"},
		Availability:     "Weekends",
		Status:           "active",
		StartDate:        "2023-06-15",
		EmergencyContact: "Jane Smith, Sister, +1 (613) 555-0000",
	}
}

func TestVolunteerInputValid(t *testing.T) {
	in := validVolunteer()
	require.NoError(t, Validate(&in))

	v := in.Record()
	assert.Equal(t, []string{"Driving", "Lifting", "IT"}, v.Skills)
}

func TestVolunteerInputEmptySkills(t *testing.T) {
	in := validVolunteer()
	in.Skills = nil

	err := Validate(&in)
	require.Error(t, err)
	fe := err.(FieldErrors)
	assert.Contains(t, fe, "skills")
}

func TestVolunteerInputBadDate(t *testing.T) {
	in := validVolunteer()
	in.StartDate = "15/06/2023"

	err := Validate(&in)
	require.Error(t, err)
	assert.Contains(t, err.(FieldErrors), "startDate")
}

func TestVolunteerUnknownSkillTokenKept(t *testing.T) {
	// Loss-tolerant conversion: unknown tokens survive as-is.
	in := validVolunteer()
	in.Skills = []string{"driving", "forklift-operation"}
	require.NoError(t, Validate(&in))

	v := in.Record()
	assert.Equal(t, []string{"Driving", "forklift-operation"}, v.Skills)
}

func TestStockInputReasonVocabulary(t *testing.T) {
	tests := []struct {
		name    string
		in      StockInput
		wantErr string
	}{
		{"add donation", StockInput{Action: "add", Quantity: 2, Reason: "donation"}, ""},
		{"remove assigned", StockInput{Action: "remove", Quantity: 1, Reason: "assigned"}, ""},
		{"correction valid both ways", StockInput{Action: "remove", Quantity: 1, Reason: "correction"}, ""},
		{"add with remove reason", StockInput{Action: "add", Quantity: 2, Reason: "assigned"}, "reason"},
		{"remove with add reason", StockInput{Action: "remove", Quantity: 2, Reason: "donation"}, "reason"},
		{"unknown action", StockInput{Action: "transfer", Quantity: 2, Reason: "donation"}, "action"},
		{"zero quantity", StockInput{Action: "add", Quantity: 0, Reason: "donation"}, "quantity"},
		{"negative quantity", StockInput{Action: "remove", Quantity: -1, Reason: "lost"}, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.(FieldErrors), tt.wantErr)
		})
	}
}

func TestRequestInputValidation(t *testing.T) {
	in := RequestInput{
		Client:      "Maria Rodriguez",
		Type:        "Furniture Delivery",
		Status:      "pending",
		Description: "Sofa and dining table delivery",
		Priority:    "medium",
	}
	require.NoError(t, Validate(&in))

	in.Description = ""
	in.Priority = "asap"
	err := Validate(&in)
	require.Error(t, err)
	fe := err.(FieldErrors)
	assert.Contains(t, fe, "description")
	assert.Contains(t, fe, "priority")
}

func TestAssignInputRequiresTeam(t *testing.T) {
	err := Validate(&AssignInput{Member: "John Smith"})
	require.Error(t, err)
	assert.Contains(t, err.(FieldErrors), "team")

	assert.NoError(t, Validate(&AssignInput{Team: "IT"}))
}
