package validate

import (
	"log/slog"

	"packmule/internal/metrics"
	"packmule/internal/models"
)

// ClearDanglingGroupRefs clears any assignedGroupId on the given lists that
// does not resolve against the trip's current groups. A dangling reference
// is never permitted to reach storage, but it is also not a fatal error:
// the reference is dropped, logged, and counted. Returns the number of
// references cleared.
//
// Any of the list arguments may be nil.
func ClearDanglingGroupRefs(trip *models.Trip, packing []models.PackingItem, meals []models.Meal, shopping []models.ShoppingItem) int {
	cleared := 0

	clearRef := func(kind Kind, itemID, name string, ref *string) {
		if *ref == "" || trip.HasGroup(*ref) {
			return
		}
		slog.Warn("clearing dangling group reference",
			"trip_id", trip.ID,
			"kind", kind,
			"item_id", itemID,
			"item_name", name,
			"group_id", *ref,
		)
		*ref = ""
		cleared++
		metrics.DanglingRefsCleared.Inc()
	}

	for i := range packing {
		clearRef(KindPackingItem, packing[i].ID, packing[i].Name, &packing[i].AssignedGroupID)
	}
	for i := range meals {
		for j := range meals[i].Ingredients {
			in := &meals[i].Ingredients[j]
			clearRef(KindIngredient, in.ID, in.Name, &in.AssignedGroupID)
		}
	}
	for i := range shopping {
		clearRef(KindShoppingItem, shopping[i].ID, shopping[i].Name, &shopping[i].AssignedGroupID)
	}

	return cleared
}
