package validate

import (
	"errors"
	"testing"

	"packmule/internal/models"
)

func validTrip() *models.Trip {
	return &models.Trip{
		ID:        "trip-a",
		Name:      "Weekend at the Lake",
		Type:      models.TripCarCamping,
		StartDate: "2026-06-12",
		EndDate:   "2026-06-14",
		PartySize: 4,
		Groups: []models.Group{
			{ID: "g1", Name: "The Hendersons", Size: 2, Color: models.ColorTeal},
		},
	}
}

func TestTrip(t *testing.T) {
	if err := Trip(validTrip()); err != nil {
		t.Fatalf("Expected valid trip, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*models.Trip)
	}{
		{"missing name", func(tr *models.Trip) { tr.Name = "" }},
		{"unknown type", func(tr *models.Trip) { tr.Type = "glamping" }},
		{"missing dates", func(tr *models.Trip) { tr.StartDate = "" }},
		{"no party", func(tr *models.Trip) { tr.Groups = nil; tr.PartySize = 0 }},
		{"bad group color", func(tr *models.Trip) { tr.Groups[0].Color = "mauve" }},
		{"zero group size", func(tr *models.Trip) { tr.Groups[0].Size = 0 }},
		{"duplicate group id", func(tr *models.Trip) {
			tr.Groups = append(tr.Groups, tr.Groups[0])
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trip := validTrip()
			tc.mutate(trip)
			err := Trip(trip)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Errorf("Expected typed *Error, got %T", err)
			}
		})
	}
}

func TestPackingListBatchRejection(t *testing.T) {
	items := []models.PackingItem{
		{ID: "p1", Name: "Tent", Category: models.CatShelter, Quantity: 1},
		{ID: "p2", Name: "", Category: models.CatKitchen, Quantity: 2},
	}
	err := PackingList(items)
	if err == nil {
		t.Fatal("Expected whole batch rejected when one record fails")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected typed *Error, got %T", err)
	}
	if verr.Kind != KindPackingItem {
		t.Errorf("Expected packing_item kind, got %s", verr.Kind)
	}
}

func TestExclusivityRejected(t *testing.T) {
	items := []models.PackingItem{
		{ID: "p1", Name: "Rope", Category: models.CatTools, Quantity: 1, IsOwned: true, NeedsToBuy: true},
	}
	if err := PackingList(items); err == nil {
		t.Error("Expected isOwned+needsToBuy to be rejected")
	}

	shopping := []models.ShoppingItem{
		{ID: "s1", Name: "Rope", Category: models.ShopCamping, Quantity: 1, IsOwned: true, NeedsToBuy: true},
	}
	if err := ShoppingList(shopping); err == nil {
		t.Error("Expected isOwned+needsToBuy to be rejected on shopping items")
	}
}

func TestSetterExclusivity(t *testing.T) {
	var item models.PackingItem
	item.SetNeedsToBuy(true)
	item.SetOwned(true)
	if item.NeedsToBuy {
		t.Error("SetOwned did not clear needsToBuy")
	}
	item.SetNeedsToBuy(true)
	if item.IsOwned {
		t.Error("SetNeedsToBuy did not clear isOwned")
	}
}

func TestMeals(t *testing.T) {
	meals := []models.Meal{
		{ID: "m1", Name: "Scramble", Day: 1, Type: models.MealBreakfast, Ingredients: []models.Ingredient{
			{ID: "i1", Name: "Eggs", Category: models.FoodProtein, Quantity: 12},
		}},
	}
	if err := Meals(meals); err != nil {
		t.Fatalf("Expected valid meals, got %v", err)
	}

	meals[0].Ingredients[0].Quantity = 0
	if err := Meals(meals); err == nil {
		t.Error("Expected rejection for non-positive ingredient quantity")
	}
}

func TestClearDanglingGroupRefs(t *testing.T) {
	trip := validTrip()
	packing := []models.PackingItem{
		{ID: "p1", Name: "Tent", Category: models.CatShelter, Quantity: 1, AssignedGroupID: "g1"},
		{ID: "p2", Name: "Rope", Category: models.CatTools, Quantity: 1, AssignedGroupID: "gone"},
	}
	meals := []models.Meal{
		{ID: "m1", Name: "Scramble", Day: 1, Type: models.MealBreakfast, Ingredients: []models.Ingredient{
			{ID: "i1", Name: "Eggs", Category: models.FoodProtein, Quantity: 12, AssignedGroupID: "gone"},
		}},
	}
	shopping := []models.ShoppingItem{
		{ID: "s1", Name: "Rope", Category: models.ShopCamping, Quantity: 1, AssignedGroupID: "g1"},
	}

	cleared := ClearDanglingGroupRefs(trip, packing, meals, shopping)
	if cleared != 2 {
		t.Errorf("Expected 2 cleared references, got %d", cleared)
	}
	if packing[0].AssignedGroupID != "g1" {
		t.Error("Valid reference was cleared")
	}
	if packing[1].AssignedGroupID != "" {
		t.Error("Dangling packing reference was not cleared")
	}
	if meals[0].Ingredients[0].AssignedGroupID != "" {
		t.Error("Dangling ingredient reference was not cleared")
	}
	if shopping[0].AssignedGroupID != "g1" {
		t.Error("Valid shopping reference was cleared")
	}
}
