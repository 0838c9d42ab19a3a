// Package template expands named packing templates, built-in or user-saved,
// into fresh item sets sized to a trip's duration and party size.
//
// Expansion always produces items with newly generated identities; callers
// hand the result through the preserve package before it reaches the
// validation gate and storage, so prior group assignments survive the
// identity churn.
package template

import (
	"fmt"

	"github.com/google/uuid"

	"packmule/internal/models"
)

// Expand scales a template against the trip and returns a fresh packing
// list. Per-person quantities scale with the trip's total party size,
// per-day quantities with the inclusive day count; per-trip items are left
// unscaled. Saved templates reapply their captured group assignments.
func Expand(tpl *models.Template, trip *models.Trip) []models.PackingItem {
	party := trip.TotalPartySize()
	if party < 1 {
		party = 1
	}
	days := trip.DurationDays()

	items := make([]models.PackingItem, 0, len(tpl.Items))
	for _, line := range tpl.Items {
		qty := line.Quantity
		if line.PerPerson {
			qty *= party
		}
		if line.PerDay {
			qty *= days
		}

		item := models.PackingItem{
			ID:       uuid.New().String(),
			Name:     line.Name,
			Category: line.Category,
			Quantity: qty,
			Notes:    line.Notes,
		}
		if tpl.SavedAssignments != nil {
			item.AssignedGroupID = tpl.SavedAssignments[models.AssignmentKey(line.Name, line.Category)]
		}
		items = append(items, item)
	}
	return items
}

// ExpandDefault expands the built-in template for the trip's type.
func ExpandDefault(trip *models.Trip) ([]models.PackingItem, error) {
	tpl, ok := BuiltIn(trip.Type)
	if !ok {
		return nil, fmt.Errorf("no built-in template for trip type %q", trip.Type)
	}
	return Expand(&tpl, trip), nil
}

// Capture snapshots the current item set verbatim, group assignments
// included, as a saved template under the given name.
func Capture(name string, tripType models.TripType, items []models.PackingItem) *models.Template {
	tpl := &models.Template{
		Name:     name,
		TripType: tripType,
		Items:    make([]models.TemplateItem, 0, len(items)),
	}
	for _, item := range items {
		tpl.Items = append(tpl.Items, models.TemplateItem{
			Name:     item.Name,
			Category: item.Category,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
		if item.AssignedGroupID != "" {
			if tpl.SavedAssignments == nil {
				tpl.SavedAssignments = make(map[string]string)
			}
			tpl.SavedAssignments[models.AssignmentKey(item.Name, item.Category)] = item.AssignedGroupID
		}
	}
	return tpl
}
