package preserve

import (
	"testing"

	"packmule/internal/models"
	"packmule/internal/storage"
)

func TestAssignments(t *testing.T) {
	t.Run("prior item match copies the assignment", func(t *testing.T) {
		prior := []models.PackingItem{
			{ID: "old-1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g1"},
		}
		fresh := []models.PackingItem{
			{ID: "new-1", Name: "Tent", Category: models.CatShelter, Quantity: 1},
		}

		got := Assignments(fresh, prior, nil)
		if got[0].AssignedGroupID != "g1" {
			t.Errorf("Expected assignment g1 preserved, got %q", got[0].AssignedGroupID)
		}
		if fresh[0].AssignedGroupID != "" {
			t.Error("Input slice was mutated")
		}
	})

	t.Run("log fallback recovers assignments missing from the prior list", func(t *testing.T) {
		log := []storage.AssignmentRecord{
			{TripID: "trip-a", Name: "Cooler", Category: models.CatKitchen, GroupID: "g2"},
		}
		fresh := []models.PackingItem{
			{ID: "new-1", Name: "Cooler", Category: models.CatKitchen, Quantity: 1},
		}

		got := Assignments(fresh, nil, log)
		if got[0].AssignedGroupID != "g2" {
			t.Errorf("Expected log fallback to recover g2, got %q", got[0].AssignedGroupID)
		}
	})

	t.Run("latest log entry wins", func(t *testing.T) {
		log := []storage.AssignmentRecord{
			{Name: "Cooler", Category: models.CatKitchen, GroupID: "g1"},
			{Name: "Cooler", Category: models.CatKitchen, GroupID: "g2"},
		}
		got := Assignments([]models.PackingItem{
			{ID: "new-1", Name: "Cooler", Category: models.CatKitchen, Quantity: 1},
		}, nil, log)
		if got[0].AssignedGroupID != "g2" {
			t.Errorf("Expected latest log entry g2, got %q", got[0].AssignedGroupID)
		}
	})

	t.Run("prior list wins over the log", func(t *testing.T) {
		prior := []models.PackingItem{
			{ID: "old-1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g1"},
		}
		log := []storage.AssignmentRecord{
			{Name: "Tent", Category: models.CatShelter, GroupID: "g2"},
		}
		got := Assignments([]models.PackingItem{
			{ID: "new-1", Name: "Tent", Category: models.CatShelter, Quantity: 1},
		}, prior, log)
		if got[0].AssignedGroupID != "g1" {
			t.Errorf("Expected prior list to win, got %q", got[0].AssignedGroupID)
		}
	})

	t.Run("matching is case-sensitive and exact", func(t *testing.T) {
		prior := []models.PackingItem{
			{ID: "old-1", Name: "tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g1"},
		}
		got := Assignments([]models.PackingItem{
			{ID: "new-1", Name: "Tent", Category: models.CatShelter, Quantity: 1},
		}, prior, nil)
		if got[0].AssignedGroupID != "" {
			t.Errorf("Expected no match for renamed item, got %q", got[0].AssignedGroupID)
		}
	})

	t.Run("existing assignment on the new item is kept", func(t *testing.T) {
		prior := []models.PackingItem{
			{ID: "old-1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g1"},
		}
		got := Assignments([]models.PackingItem{
			{ID: "new-1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g3"},
		}, prior, nil)
		if got[0].AssignedGroupID != "g3" {
			t.Errorf("Expected explicit assignment kept, got %q", got[0].AssignedGroupID)
		}
	})
}
