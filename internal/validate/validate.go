// Package validate is the validation gate in front of storage. Every write
// path, single record or whole list, passes its records through here before
// any persistence call. A batch where any single record fails rejects the
// entire batch; downstream consumers assume full-list consistency per trip.
//
// The gate never mutates valid input. The one corrective operation,
// ClearDanglingGroupRefs, is separate and explicit: dangling group
// references are cleared and logged rather than rejected.
package validate

import (
	"fmt"
	"log/slog"

	"packmule/internal/metrics"
	"packmule/internal/models"
)

// Kind names the entity kind a validation error refers to.
type Kind string

// Entity kinds.
const (
	KindTrip         Kind = "trip"
	KindGroup        Kind = "group"
	KindPackingItem  Kind = "packing_item"
	KindMeal         Kind = "meal"
	KindIngredient   Kind = "ingredient"
	KindShoppingItem Kind = "shopping_item"
	KindGear         Kind = "gear"
	KindTemplate     Kind = "template"
)

// Error is a typed validation failure. The operation that produced it was
// aborted before any persistence; prior persisted state is untouched.
type Error struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Kind, e.Field, e.Reason)
}

func fail(kind Kind, field, reason string) error {
	metrics.ValidationFailures.WithLabelValues(string(kind)).Inc()
	slog.Warn("validation failed", "kind", kind, "field", field, "reason", reason)
	return &Error{Kind: kind, Field: field, Reason: reason}
}

// Trip validates a trip record, including its embedded groups.
func Trip(t *models.Trip) error {
	if t.ID == "" {
		return fail(KindTrip, "id", "is required")
	}
	if t.Name == "" {
		return fail(KindTrip, "name", "is required")
	}
	if !models.ValidTripType(t.Type) {
		return fail(KindTrip, "type", fmt.Sprintf("%q is not a known trip type", t.Type))
	}
	if t.StartDate == "" || t.EndDate == "" {
		return fail(KindTrip, "dates", "start and end are required")
	}
	if len(t.Groups) == 0 && t.PartySize <= 0 {
		return fail(KindTrip, "partySize", "must be positive when no groups are set")
	}
	seen := make(map[string]bool, len(t.Groups))
	for i := range t.Groups {
		if err := Group(&t.Groups[i]); err != nil {
			return err
		}
		if seen[t.Groups[i].ID] {
			return fail(KindGroup, "id", "is duplicated within the trip")
		}
		seen[t.Groups[i].ID] = true
	}
	return nil
}

// Group validates a single group. The same checks back the strict decode at
// the storage boundary: a stored group that fails here is a decode failure,
// never a silent best-effort repair.
func Group(g *models.Group) error {
	if g.ID == "" {
		return fail(KindGroup, "id", "is required")
	}
	if g.Name == "" {
		return fail(KindGroup, "name", "is required")
	}
	if g.Size <= 0 {
		return fail(KindGroup, "size", "must be positive")
	}
	if !models.ValidGroupColor(g.Color) {
		return fail(KindGroup, "color", fmt.Sprintf("%q is not in the palette", g.Color))
	}
	return nil
}

// PackingList validates a whole packing list. Any failing item rejects the
// entire list.
func PackingList(items []models.PackingItem) error {
	for i := range items {
		if err := packingItem(&items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func packingItem(p *models.PackingItem) error {
	if p.ID == "" {
		return fail(KindPackingItem, "id", "is required")
	}
	if p.Name == "" {
		return fail(KindPackingItem, "name", "is required")
	}
	if !models.ValidPackingCategory(p.Category) {
		return fail(KindPackingItem, "category", fmt.Sprintf("%q is not a known category", p.Category))
	}
	if p.Quantity <= 0 {
		return fail(KindPackingItem, "quantity", "must be positive")
	}
	if p.IsOwned && p.NeedsToBuy {
		return fail(KindPackingItem, "isOwned/needsToBuy", "are mutually exclusive")
	}
	return nil
}

// Meals validates a whole meal list, ingredients included.
func Meals(meals []models.Meal) error {
	for i := range meals {
		if err := meal(&meals[i]); err != nil {
			return fmt.Errorf("meal %d: %w", i, err)
		}
	}
	return nil
}

func meal(m *models.Meal) error {
	if m.ID == "" {
		return fail(KindMeal, "id", "is required")
	}
	if m.Name == "" {
		return fail(KindMeal, "name", "is required")
	}
	if m.Day <= 0 {
		return fail(KindMeal, "day", "must be positive")
	}
	if !models.ValidMealType(m.Type) {
		return fail(KindMeal, "type", fmt.Sprintf("%q is not a known meal type", m.Type))
	}
	for i := range m.Ingredients {
		if err := ingredient(&m.Ingredients[i]); err != nil {
			return fmt.Errorf("ingredient %d: %w", i, err)
		}
	}
	return nil
}

func ingredient(in *models.Ingredient) error {
	if in.ID == "" {
		return fail(KindIngredient, "id", "is required")
	}
	if in.Name == "" {
		return fail(KindIngredient, "name", "is required")
	}
	if !models.ValidFoodCategory(in.Category) {
		return fail(KindIngredient, "category", fmt.Sprintf("%q is not a known food category", in.Category))
	}
	if in.Quantity <= 0 {
		return fail(KindIngredient, "quantity", "must be positive")
	}
	if in.IsOwned && in.NeedsToBuy {
		return fail(KindIngredient, "isOwned/needsToBuy", "are mutually exclusive")
	}
	return nil
}

// ShoppingList validates a whole shopping list.
func ShoppingList(items []models.ShoppingItem) error {
	for i := range items {
		if err := shoppingItem(&items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func shoppingItem(s *models.ShoppingItem) error {
	if s.ID == "" {
		return fail(KindShoppingItem, "id", "is required")
	}
	if s.Name == "" {
		return fail(KindShoppingItem, "name", "is required")
	}
	if !models.ValidShoppingCategory(s.Category) {
		return fail(KindShoppingItem, "category", fmt.Sprintf("%q is not a known shopping category", s.Category))
	}
	if s.Quantity <= 0 {
		return fail(KindShoppingItem, "quantity", "must be positive")
	}
	if s.IsOwned && s.NeedsToBuy {
		return fail(KindShoppingItem, "isOwned/needsToBuy", "are mutually exclusive")
	}
	return nil
}

// Gear validates a single gear item.
func Gear(g *models.GearItem) error {
	if g.ID == "" {
		return fail(KindGear, "id", "is required")
	}
	if g.Name == "" {
		return fail(KindGear, "name", "is required")
	}
	if !models.ValidPackingCategory(g.Category) {
		return fail(KindGear, "category", fmt.Sprintf("%q is not a known category", g.Category))
	}
	if g.WeightGrams < 0 {
		return fail(KindGear, "weightGrams", "must not be negative")
	}
	return nil
}

// Template validates a template record.
func Template(t *models.Template) error {
	if t.Name == "" {
		return fail(KindTemplate, "name", "is required")
	}
	if !models.ValidTripType(t.TripType) {
		return fail(KindTemplate, "tripType", fmt.Sprintf("%q is not a known trip type", t.TripType))
	}
	for i, item := range t.Items {
		if item.Name == "" {
			return fmt.Errorf("item %d: %w", i, fail(KindTemplate, "items.name", "is required"))
		}
		if !models.ValidPackingCategory(item.Category) {
			return fmt.Errorf("item %d: %w", i, fail(KindTemplate, "items.category", fmt.Sprintf("%q is not a known category", item.Category)))
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: %w", i, fail(KindTemplate, "items.quantity", "must be positive"))
		}
	}
	return nil
}
