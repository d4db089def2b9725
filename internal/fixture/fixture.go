// Package fixture seeds a fresh database with demo data: a handful of
// clients, volunteers, donation items and service requests, plus the
// standing teams. Teams are always seeded; the rest only in demo mode.
package fixture

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hwfottawa/hwfadmin/internal/model"
	"github.com/hwfottawa/hwfadmin/internal/store"
)

// Teams are the standing teams requests can be assigned to. They are not
// editable over the API, so this is their single definition.
var Teams = []model.Team{
	{
		Name:        "Delivery",
		Lead:        "John Smith",
		LeadID:      "VOL001",
		Description: "Furniture and household goods delivery",
		Skills:      []string{"Driving", "Lifting"},
		Schedule:    map[string]bool{"monday": true, "wednesday": true, "saturday": true},
		Members: []model.TeamMember{
			{ID: "VOL001", Name: "John Smith", Role: "Lead", JoinDate: "2023-06-15", Skills: []string{"Driving", "Lifting"}},
			{ID: "VOL003", Name: "Michael Brown", Role: "Member", JoinDate: "2023-09-01", Skills: []string{"Driving"}},
		},
	},
	{
		Name:        "Assessment",
		Lead:        "Emma Davis",
		LeadID:      "VOL002",
		Description: "Client home visits and needs assessment",
		Skills:      []string{"Customer Service", "Documentation"},
		Schedule:    map[string]bool{"tuesday": true, "thursday": true},
		Members: []model.TeamMember{
			{ID: "VOL002", Name: "Emma Davis", Role: "Lead", JoinDate: "2023-03-20", Skills: []string{"Customer Service", "Documentation"}},
		},
	},
	{
		Name:        "IT",
		Lead:        "Emma Davis",
		LeadID:      "VOL002",
		Description: "Computer setup and digital literacy support",
		Skills:      []string{"IT"},
		Schedule:    map[string]bool{"wednesday": true, "friday": true},
		Members: []model.TeamMember{
			{ID: "VOL002", Name: "Emma Davis", Role: "Lead", JoinDate: "2023-03-20", Skills: []string{"IT"}},
		},
	},
	{
		Name:        "Kitchen",
		Lead:        "Sophia Wilson",
		LeadID:      "VOL004",
		Description: "Meal preparation and kitchen starter kits",
		Skills:      []string{"Organization", "Inventory"},
		Schedule:    map[string]bool{"monday": true, "friday": true, "sunday": true},
		Members: []model.TeamMember{
			{ID: "VOL004", Name: "Sophia Wilson", Role: "Lead", JoinDate: "2024-01-08", Skills: []string{"Organization"}},
		},
	},
	{
		Name:        "Maintenance",
		Lead:        "Michael Brown",
		LeadID:      "VOL003",
		Description: "Repairs on donated furniture and appliances",
		Skills:      []string{"Maintenance"},
		Schedule:    map[string]bool{"saturday": true},
		Members: []model.TeamMember{
			{ID: "VOL003", Name: "Michael Brown", Role: "Lead", JoinDate: "2023-09-01", Skills: []string{"Maintenance"}},
		},
	},
	{
		Name:        "Children",
		Lead:        "Sophia Wilson",
		LeadID:      "VOL004",
		Description: "School supplies and children's programs",
		Skills:      []string{"Customer Service", "Organization"},
		Schedule:    map[string]bool{"sunday": true},
		Members: []model.TeamMember{
			{ID: "VOL004", Name: "Sophia Wilson", Role: "Lead", JoinDate: "2024-01-08", Skills: []string{"Organization"}},
		},
	},
}

// SeedTeams inserts the standing teams if none exist yet.
func SeedTeams(ctx context.Context, db *sql.DB) error {
	existing, err := store.SearchTeams(ctx, db, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range Teams {
		if _, err := store.CreateTeam(ctx, db, &Teams[i]); err != nil {
			return fmt.Errorf("seeding team %s: %w", Teams[i].Name, err)
		}
	}
	return nil
}

// SeedDemo fills an empty database with demo clients, volunteers, inventory
// and requests. It refuses to run against a database that already has
// clients.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	existing, err := store.SearchClients(ctx, db, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("database already has clients, refusing to seed demo data")
	}

	if err := seedClients(ctx, db); err != nil {
		return err
	}
	if err := seedVolunteers(ctx, db); err != nil {
		return err
	}
	if err := seedInventory(ctx, db); err != nil {
		return err
	}
	return seedRequests(ctx, db)
}

func seedClients(ctx context.Context, db *sql.DB) error {
	clients := []model.Client{
		{
			FirstName: "Maria", LastName: "Rodriguez",
			Email: "maria.r@email.com", Phone: "+1 (613) 555-1234",
			Address: "245 Bank St", City: "Ottawa", PostalCode: "K2P 1X3",
			LanguagesSpoken: "Spanish, English", CountryOfOrigin: "Syria",
			StatusInCanada: model.ClientStatusRefugee, HousingType: model.HousingApartment,
			NumberOfAdults: 2, NumberOfChildren: 3, ChildrenAges: "4, 7, 11",
		},
		{
			FirstName: "Omar", LastName: "Hassan",
			Phone:   "+1 (613) 555-2345",
			Address: "18 Gladstone Ave", City: "Ottawa", PostalCode: "K2P 0X8",
			LanguagesSpoken: "Somali, Arabic", CountryOfOrigin: "Somalia",
			StatusInCanada: model.ClientStatusRecentArrival, HousingType: model.HousingShelter,
			NumberOfAdults: 1, NumberOfChildren: 2, ChildrenAges: "5, 9",
		},
		{
			FirstName: "Li", LastName: "Wei",
			Email: "li.wei@email.com", Phone: "+1 (613) 555-3456",
			Address: "77 Somerset St W", City: "Ottawa", PostalCode: "K2P 0H5",
			LanguagesSpoken: "Mandarin, English", CountryOfOrigin: "China",
			StatusInCanada: model.ClientStatusLowIncome, HousingType: model.HousingTownhouse,
			HasTransportation: true, NumberOfAdults: 2, NumberOfChildren: 1, ChildrenAges: "3",
		},
		{
			FirstName: "Sarah", LastName: "Johnson",
			Email: "sarah.j@email.com", Phone: "+1 (613) 555-4567",
			Address: "301 Elgin St", City: "Ottawa", PostalCode: "K2P 1M2",
			LanguagesSpoken: "English", CountryOfOrigin: "Canada",
			StatusInCanada: model.ClientStatusLowIncome, HousingType: model.HousingHouse,
			HasTransportation: true, NumberOfAdults: 1,
		},
		{
			FirstName: "Ahmed", LastName: "Khalil",
			Phone:   "+1 (613) 555-5678",
			Address: "55 Rideau St", City: "Ottawa", PostalCode: "K1N 5W8",
			LanguagesSpoken: "Arabic, French", CountryOfOrigin: "Lebanon",
			StatusInCanada: model.ClientStatusRefugee, HousingType: model.HousingTemporary,
			NumberOfAdults: 2, NumberOfChildren: 4, ChildrenAges: "2, 6, 8, 13",
		},
	}

	for i := range clients {
		if _, err := store.CreateClient(ctx, db, &clients[i]); err != nil {
			return fmt.Errorf("seeding clients: %w", err)
		}
	}
	return nil
}

func seedVolunteers(ctx context.Context, db *sql.DB) error {
	volunteers := []model.Volunteer{
		{
			Name: "John Smith", Email: "john.smith@email.com",
			Phone: "+1 (613) 555-8765", Address: "123 Main St, Ottawa",
			Skills:       []string{"Driving", "Lifting"},
			Availability: "Weekends", Status: model.VolunteerActive,
			StartDate: "2023-06-15", EmergencyContact: "Jane Smith, Sister, +1 (613) 555-8766",
		},
		{
			Name: "Emma Davis", Email: "emma.davis@email.com",
			Phone: "+1 (613) 555-7654", Address: "45 Oak Ave, Ottawa",
			Skills:       []string{"IT", "Customer Service", "Documentation"},
			Availability: "Weekday evenings", Status: model.VolunteerActive,
			StartDate: "2023-03-20", EmergencyContact: "Tom Davis, Spouse, +1 (613) 555-7655",
		},
		{
			Name: "Michael Brown", Email: "michael.b@email.com",
			Phone: "+1 (613) 555-6543", Address: "9 Pine Rd, Ottawa",
			Skills:       []string{"Driving", "Maintenance"},
			Availability: "Saturdays", Status: model.VolunteerActive,
			StartDate: "2023-09-01", EmergencyContact: "Lisa Brown, Spouse, +1 (613) 555-6544",
		},
		{
			Name: "Sophia Wilson", Email: "sophia.w@email.com",
			Phone: "+1 (613) 555-5432", Address: "67 Maple Dr, Ottawa",
			Skills:       []string{"Organization", "Translation (French)"},
			Availability: "Flexible", Status: model.VolunteerActive,
			StartDate: "2024-01-08", EmergencyContact: "Paul Wilson, Father, +1 (613) 555-5433",
		},
		{
			Name: "Daniel Lee", Email: "daniel.lee@email.com",
			Phone: "+1 (613) 555-4321", Address: "12 Birch Ln, Ottawa",
			Skills:       []string{"Inventory", "Admin"},
			Availability: "Weekday mornings", Status: model.VolunteerPending,
			StartDate: "2024-03-11", EmergencyContact: "Grace Lee, Mother, +1 (613) 555-4322",
		},
	}

	for i := range volunteers {
		if _, err := store.CreateVolunteer(ctx, db, &volunteers[i]); err != nil {
			return fmt.Errorf("seeding volunteers: %w", err)
		}
	}
	return nil
}

func seedInventory(ctx context.Context, db *sql.DB) error {
	items := []model.InventoryItem{
		{
			Name: "Sofa", Category: "Furniture", Condition: model.ConditionGood,
			Status: model.ItemAvailable, Quantity: 3, Location: "Warehouse A",
			DateAdded: "2024-01-15", Description: "Three-seater fabric sofa",
		},
		{
			Name: "Dining Table", Category: "Furniture", Condition: model.ConditionExcellent,
			Status: model.ItemAvailable, Quantity: 2, Location: "Warehouse A",
			DateAdded: "2024-01-20", Description: "Wooden table, seats six",
		},
		{
			Name: "Microwave", Category: "Appliances", Condition: model.ConditionNew,
			Status: model.ItemReserved, Quantity: 5, Location: "Warehouse B",
			DateAdded: "2024-02-01",
		},
		{
			Name: "Double Bed Frame", Category: "Furniture", Condition: model.ConditionFair,
			Status: model.ItemAvailable, Quantity: 1, Location: "Warehouse A",
			DateAdded: "2024-02-10", Description: "Needs new slats",
		},
		{
			Name: "Kitchen Utensil Set", Category: "Kitchen", Condition: model.ConditionNew,
			Status: model.ItemAvailable, Quantity: 12, Location: "Warehouse B",
			DateAdded: "2024-02-18",
		},
	}

	for i := range items {
		if _, err := store.CreateItem(ctx, db, &items[i], "system"); err != nil {
			return fmt.Errorf("seeding inventory: %w", err)
		}
	}
	return nil
}

func seedRequests(ctx context.Context, db *sql.DB) error {
	requests := []struct {
		request model.Request
		team    string
		member  string
	}{
		{
			request: model.Request{
				Client: "Maria Rodriguez", Type: "Furniture Delivery",
				Status: model.RequestPending, Date: "2024-03-05",
				Description: "Sofa and dining table for new apartment",
				Priority:    model.PriorityHigh, Items: []string{"Sofa", "Dining Table"},
			},
			team: "Delivery", member: "John Smith",
		},
		{
			request: model.Request{
				Client: "Omar Hassan", Type: "Home Assessment",
				Status: model.RequestScheduled, Date: "2024-03-08",
				Description: "Initial needs assessment for family of three",
				Priority:    model.PriorityUrgent,
			},
			team: "Assessment",
		},
		{
			request: model.Request{
				Client: "Li Wei", Type: "Computer Setup",
				Status: model.RequestProcessing, Date: "2024-03-12",
				Description: "Laptop setup and internet access help",
				Priority:    model.PriorityMedium,
			},
			team: "IT", member: "Emma Davis",
		},
		{
			request: model.Request{
				Client: "Sarah Johnson", Type: "Kitchen Starter Kit",
				Status: model.RequestCompleted, Date: "2024-02-25",
				Description: "Utensils and small appliances",
				Priority:    model.PriorityLow, Items: []string{"Kitchen Utensil Set", "Microwave"},
			},
			team: "Kitchen",
		},
		{
			request: model.Request{
				Client: "Ahmed Khalil", Type: "Furniture Delivery",
				Status: model.RequestPending, Date: "2024-03-15",
				Description: "Bed frame for temporary housing",
				Priority:    model.PriorityHigh, Items: []string{"Double Bed Frame"},
			},
		},
	}

	for _, seed := range requests {
		created, err := store.CreateRequest(ctx, db, &seed.request, "system")
		if err != nil {
			return fmt.Errorf("seeding requests: %w", err)
		}
		if seed.team == "" {
			continue
		}
		if _, err := store.AssignTeam(ctx, db, created.ID, seed.team, seed.member, "system"); err != nil {
			return fmt.Errorf("seeding request assignment: %w", err)
		}
	}
	return nil
}
