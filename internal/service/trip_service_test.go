package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"packmule/internal/models"
	"packmule/internal/storage/sqlite"
	"packmule/internal/validate"
)

func setupService(t *testing.T) *TripService {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewTripService(store)
}

func saveLakeTrip(t *testing.T, svc *TripService) *models.Trip {
	t.Helper()
	trip := &models.Trip{
		ID:        "trip-lake",
		Name:      "Weekend at the Lake",
		Type:      models.TripCarCamping,
		StartDate: "2026-06-12",
		EndDate:   "2026-06-14",
		PartySize: 4,
		Groups: []models.Group{
			{ID: "g1", Name: "The Hendersons", Size: 2, Color: models.ColorTeal},
			{ID: "g2", Name: "The Parks", Size: 2, Color: models.ColorOrange},
		},
	}
	if err := svc.SaveTrip(context.Background(), trip); err != nil {
		t.Fatalf("SaveTrip failed: %v", err)
	}
	return trip
}

func TestSaveTripRejectsInvalid(t *testing.T) {
	svc := setupService(t)
	trip := &models.Trip{ID: "t1", Name: "", Type: models.TripCabin, StartDate: "2026-01-01", EndDate: "2026-01-02", PartySize: 2}

	err := svc.SaveTrip(context.Background(), trip)
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected validation error, got %v", err)
	}

	// Nothing was persisted.
	got, err := svc.GetTrip(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetTrip failed: %v", err)
	}
	if got != nil {
		t.Error("Invalid trip reached storage")
	}
}

func TestReadYourWrites(t *testing.T) {
	svc := setupService(t)
	trip := saveLakeTrip(t, svc)

	trips, err := svc.GetTrips(context.Background())
	if err != nil {
		t.Fatalf("GetTrips failed: %v", err)
	}
	if len(trips) != 1 || trips[0].ID != trip.ID {
		t.Errorf("Expected the saved trip to be immediately readable, got %+v", trips)
	}
}

func TestApplyTemplatePreservesAssignments(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	items, err := svc.ResetToDefaultTemplate(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ResetToDefaultTemplate failed: %v", err)
	}

	var tentID string
	for _, item := range items {
		if item.Name == "Tent" {
			tentID = item.ID
		}
	}
	if tentID == "" {
		t.Fatal("No tent in the default car-camping list")
	}

	if err := svc.AssignGroup(ctx, trip.ID, tentID, "g1"); err != nil {
		t.Fatalf("AssignGroup failed: %v", err)
	}

	// Reset regenerates every identity; the assignment must survive.
	items, err = svc.ResetToDefaultTemplate(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ResetToDefaultTemplate failed: %v", err)
	}
	for _, item := range items {
		if item.Name != "Tent" {
			continue
		}
		if item.ID == tentID {
			t.Error("Expected a regenerated identity")
		}
		if item.AssignedGroupID != "g1" {
			t.Errorf("Expected assignment g1 preserved across reset, got %q", item.AssignedGroupID)
		}
	}
}

func TestAssignmentLogSurvivesEmptyPriorList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	items, err := svc.ResetToDefaultTemplate(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ResetToDefaultTemplate failed: %v", err)
	}
	var tentID string
	for _, item := range items {
		if item.Name == "Tent" {
			tentID = item.ID
		}
	}
	if err := svc.AssignGroup(ctx, trip.ID, tentID, "g2"); err != nil {
		t.Fatalf("AssignGroup failed: %v", err)
	}

	// Wipe the list entirely; only the log remembers the assignment now.
	if err := svc.SavePackingList(ctx, trip.ID, []models.PackingItem{}); err != nil {
		t.Fatalf("SavePackingList failed: %v", err)
	}

	items, err = svc.ResetToDefaultTemplate(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ResetToDefaultTemplate failed: %v", err)
	}
	for _, item := range items {
		if item.Name == "Tent" && item.AssignedGroupID != "g2" {
			t.Errorf("Expected log-recovered assignment g2, got %q", item.AssignedGroupID)
		}
	}
}

func TestSaveTripClearsDanglingRefsOnGroupRemoval(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	if err := svc.SavePackingList(ctx, trip.ID, []models.PackingItem{
		{ID: "p1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g2"},
	}); err != nil {
		t.Fatalf("SavePackingList failed: %v", err)
	}

	// Drop g2 from the trip; the tent's reference is now dangling.
	trip.Groups = trip.Groups[:1]
	if err := svc.SaveTrip(ctx, trip); err != nil {
		t.Fatalf("SaveTrip failed: %v", err)
	}

	items, err := svc.GetPackingList(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetPackingList failed: %v", err)
	}
	if items[0].AssignedGroupID != "" {
		t.Errorf("Expected dangling reference cleared, got %q", items[0].AssignedGroupID)
	}
}

func TestSavePackingListRederivesShopping(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	if err := svc.SavePackingList(ctx, trip.ID, []models.PackingItem{
		{ID: "p1", Name: "Rope", Category: models.CatTools, Quantity: 1, NeedsToBuy: true},
	}); err != nil {
		t.Fatalf("SavePackingList failed: %v", err)
	}

	shopping, err := svc.GetShoppingList(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetShoppingList failed: %v", err)
	}
	if len(shopping) != 1 || shopping[0].SourceItemID != "p1" {
		t.Fatalf("Expected derived shopping entry for p1, got %+v", shopping)
	}

	// Saving again must not duplicate the derived entry.
	items, _ := svc.GetPackingList(ctx, trip.ID)
	if err := svc.SavePackingList(ctx, trip.ID, items); err != nil {
		t.Fatalf("SavePackingList failed: %v", err)
	}
	shopping, err = svc.GetShoppingList(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetShoppingList failed: %v", err)
	}
	if len(shopping) != 1 {
		t.Errorf("Expected 1 shopping entry after re-save, got %d", len(shopping))
	}
}

func TestClearShoppingList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	if err := svc.SavePackingList(ctx, trip.ID, []models.PackingItem{
		{ID: "p1", Name: "Rope", Category: models.CatTools, Quantity: 1, NeedsToBuy: true},
	}); err != nil {
		t.Fatalf("SavePackingList failed: %v", err)
	}
	if err := svc.ClearShoppingList(ctx, trip.ID); err != nil {
		t.Fatalf("ClearShoppingList failed: %v", err)
	}

	shopping, err := svc.GetShoppingList(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetShoppingList failed: %v", err)
	}
	if len(shopping) != 0 {
		t.Errorf("Expected empty shopping list, got %d items", len(shopping))
	}
	items, err := svc.GetPackingList(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetPackingList failed: %v", err)
	}
	for _, item := range items {
		if item.NeedsToBuy {
			t.Errorf("Expected needsToBuy reset on %s", item.Name)
		}
	}
}

func TestAssignGroupRejectsUnknownGroup(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	if err := svc.SavePackingList(ctx, trip.ID, []models.PackingItem{
		{ID: "p1", Name: "Tent", Category: models.CatShelter, Quantity: 1},
	}); err != nil {
		t.Fatalf("SavePackingList failed: %v", err)
	}

	err := svc.AssignGroup(ctx, trip.ID, "p1", "not-a-group")
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Errorf("Expected validation error for unknown group, got %v", err)
	}
}

func TestSavedTemplateRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	if err := svc.SavePackingList(ctx, trip.ID, []models.PackingItem{
		{ID: "p1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g1"},
		{ID: "p2", Name: "Cooler", Category: models.CatKitchen, Quantity: 2},
	}); err != nil {
		t.Fatalf("SavePackingList failed: %v", err)
	}

	if _, err := svc.SaveTemplateFrom(ctx, trip.ID, "our setup"); err != nil {
		t.Fatalf("SaveTemplateFrom failed: %v", err)
	}

	items, err := svc.ApplyTemplate(ctx, trip.ID, "our setup")
	if err != nil {
		t.Fatalf("ApplyTemplate failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Name == "Tent" && item.AssignedGroupID != "g1" {
			t.Errorf("Expected saved assignment reapplied, got %q", item.AssignedGroupID)
		}
	}
}

func TestDeleteTripCascades(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	trip := saveLakeTrip(t, svc)

	if _, err := svc.ResetToDefaultTemplate(ctx, trip.ID); err != nil {
		t.Fatalf("ResetToDefaultTemplate failed: %v", err)
	}
	if err := svc.DeleteTrip(ctx, trip.ID); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}

	items, err := svc.GetPackingList(ctx, trip.ID)
	if err != nil {
		t.Fatalf("GetPackingList failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty packing list after delete, got %d", len(items))
	}
}
