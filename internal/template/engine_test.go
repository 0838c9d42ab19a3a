package template

import (
	"testing"

	"packmule/internal/models"
)

func lakeTrip() *models.Trip {
	return &models.Trip{
		ID:        "trip-lake",
		Name:      "Weekend at the Lake",
		Type:      models.TripCarCamping,
		StartDate: "2026-06-12",
		EndDate:   "2026-06-14", // 3 inclusive days
		PartySize: 4,
	}
}

func findItem(t *testing.T, items []models.PackingItem, name string) models.PackingItem {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("Item %q not in expanded list", name)
	return models.PackingItem{}
}

func TestExpandDefault(t *testing.T) {
	items, err := ExpandDefault(lakeTrip())
	if err != nil {
		t.Fatalf("ExpandDefault failed: %v", err)
	}

	t.Run("per-person consumables scale with headcount", func(t *testing.T) {
		if got := findItem(t, items, "Water bottle").Quantity; got != 4 {
			t.Errorf("Expected 4 water bottles for a party of 4, got %d", got)
		}
	})

	t.Run("per-trip items do not scale", func(t *testing.T) {
		if got := findItem(t, items, "Tent").Quantity; got != 1 {
			t.Errorf("Expected 1 tent, got %d", got)
		}
	})

	t.Run("per-day items scale with inclusive duration", func(t *testing.T) {
		if got := findItem(t, items, "Firewood bundle").Quantity; got != 3 {
			t.Errorf("Expected 3 firewood bundles for 3 days, got %d", got)
		}
	})

	t.Run("every item gets a fresh identity", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, item := range items {
			if item.ID == "" {
				t.Fatalf("Item %q has no ID", item.Name)
			}
			if seen[item.ID] {
				t.Fatalf("Duplicate ID %s", item.ID)
			}
			seen[item.ID] = true
		}
	})
}

func TestExpandScalesGroupsHeadcount(t *testing.T) {
	trip := lakeTrip()
	trip.PartySize = 0
	trip.Groups = []models.Group{
		{ID: "g1", Name: "A", Size: 3, Color: models.ColorBlue},
		{ID: "g2", Name: "B", Size: 2, Color: models.ColorPink},
	}

	items, err := ExpandDefault(trip)
	if err != nil {
		t.Fatalf("ExpandDefault failed: %v", err)
	}
	if got := findItem(t, items, "Sleeping bag").Quantity; got != 5 {
		t.Errorf("Expected 5 sleeping bags from group sizes 3+2, got %d", got)
	}
}

func TestExpandComposesPerPersonPerDay(t *testing.T) {
	trip := lakeTrip()
	trip.Type = models.TripBackpacking

	items, err := ExpandDefault(trip)
	if err != nil {
		t.Fatalf("ExpandDefault failed: %v", err)
	}
	// 2 meals × 4 people × 3 days.
	if got := findItem(t, items, "Dehydrated meal").Quantity; got != 24 {
		t.Errorf("Expected 24 dehydrated meals, got %d", got)
	}
}

func TestCaptureRoundTrip(t *testing.T) {
	items := []models.PackingItem{
		{ID: "p1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g1"},
		{ID: "p2", Name: "Cooler", Category: models.CatKitchen, Quantity: 2, Notes: "the big one"},
	}

	tpl := Capture("our setup", models.TripCarCamping, items)
	if len(tpl.Items) != 2 {
		t.Fatalf("Expected 2 template items, got %d", len(tpl.Items))
	}
	if tpl.SavedAssignments[models.AssignmentKey("Tent", models.CatShelter)] != "g1" {
		t.Error("Expected captured assignment for Tent")
	}

	// Reapplying keeps quantities verbatim: captured lines carry no
	// scaling flags.
	expanded := Expand(tpl, lakeTrip())
	if got := findItem(t, expanded, "Cooler").Quantity; got != 2 {
		t.Errorf("Expected verbatim quantity 2, got %d", got)
	}
	if got := findItem(t, expanded, "Tent").AssignedGroupID; got != "g1" {
		t.Errorf("Expected reapplied assignment g1, got %q", got)
	}
	if findItem(t, expanded, "Tent").ID == items[0].ID {
		t.Error("Expected a fresh identity on reapplication")
	}
}

func TestBuiltInCoversAllTripTypes(t *testing.T) {
	for _, tt := range []models.TripType{models.TripCarCamping, models.TripBackpacking, models.TripCanoe, models.TripCabin} {
		if _, ok := BuiltIn(tt); !ok {
			t.Errorf("No built-in template for %s", tt)
		}
	}
}
