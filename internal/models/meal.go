package models

// FoodCategory classifies meal ingredients for shopping.
type FoodCategory string

// Food categories.
const (
	FoodProduce FoodCategory = "produce"
	FoodProtein FoodCategory = "protein"
	FoodDairy   FoodCategory = "dairy"
	FoodGrains  FoodCategory = "grains"
	FoodCanned  FoodCategory = "canned"
	FoodSpices  FoodCategory = "spices"
	FoodSnacks  FoodCategory = "snacks"
	FoodDrinks  FoodCategory = "drinks"
	FoodOther   FoodCategory = "other"
)

// ValidFoodCategory reports whether c is a known food category.
func ValidFoodCategory(c FoodCategory) bool {
	switch c {
	case FoodProduce, FoodProtein, FoodDairy, FoodGrains, FoodCanned, FoodSpices, FoodSnacks, FoodDrinks, FoodOther:
		return true
	}
	return false
}

// MealType slots a meal into a day.
type MealType string

// Meal types.
const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ValidMealType reports whether m is a known meal type.
func ValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Ingredient is one ingredient of a planned meal. It carries the same
// needs-to-buy machinery as PackingItem so both can feed the shopping list.
type Ingredient struct {
	// ID is the unique identifier (UUID format); not stable across meal
	// plan regeneration.
	ID string `json:"id"`

	// Name is the ingredient name, e.g. "Eggs".
	Name string `json:"name"`

	// Category is the food category.
	Category FoodCategory `json:"category"`

	// Quantity is a positive count in whatever unit the name implies.
	Quantity int `json:"quantity"`

	// IsOwned marks the ingredient as already on hand.
	IsOwned bool `json:"isOwned"`

	// NeedsToBuy raises the shopping-list signal. Mutually exclusive with
	// IsOwned.
	NeedsToBuy bool `json:"needsToBuy"`

	// AssignedGroupID weakly references a Group on the owning trip.
	AssignedGroupID string `json:"assignedGroupId,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`
}

// SetOwned sets IsOwned and keeps the owned/needs-to-buy exclusivity.
func (i *Ingredient) SetOwned(owned bool) {
	i.IsOwned = owned
	if owned {
		i.NeedsToBuy = false
	}
}

// SetNeedsToBuy sets NeedsToBuy and keeps the owned/needs-to-buy exclusivity.
func (i *Ingredient) SetNeedsToBuy(needs bool) {
	i.NeedsToBuy = needs
	if needs {
		i.IsOwned = false
	}
}

// Meal is one planned meal on a trip, holding the ingredients it needs.
type Meal struct {
	// ID is the unique identifier for the meal (UUID format).
	ID string `json:"id"`

	// Name is the meal name, e.g. "Campfire Chili".
	Name string `json:"name"`

	// Day is the 1-based trip day the meal is planned for.
	Day int `json:"day"`

	// Type is the meal slot.
	Type MealType `json:"type"`

	// Ingredients is the ordered ingredient list.
	Ingredients []Ingredient `json:"ingredients"`
}
