package models

// TemplateItem is one line of a packing template before scaling.
type TemplateItem struct {
	// Name and Category become the generated PackingItem's name/category.
	Name     string          `json:"name"`
	Category PackingCategory `json:"category"`

	// Quantity is the base count before scaling.
	Quantity int `json:"quantity"`

	// PerPerson scales Quantity by the trip's total party size.
	PerPerson bool `json:"perPerson,omitempty"`

	// PerDay scales Quantity by the trip's inclusive day count.
	// PerPerson and PerDay compose (e.g. meals per person per day).
	PerDay bool `json:"perDay,omitempty"`

	// Notes is carried onto the generated item.
	Notes string `json:"notes,omitempty"`
}

// Template is a named, reusable packing-list generator: either one of the
// built-in templates keyed by trip type, or a user-saved snapshot of a
// trip's current list.
type Template struct {
	// Name identifies the template. Built-in template names match their
	// trip type; saved templates use the user-chosen name.
	Name string `json:"name"`

	// TripType is the trip type the template targets; saved templates keep
	// the type of the trip they were captured from.
	TripType TripType `json:"tripType"`

	// Items are the unscaled template lines. For saved templates the
	// captured group assignments ride along in SavedAssignments, keyed by
	// name+"\x00"+category, since TemplateItem itself has no group field.
	Items []TemplateItem `json:"items"`

	// SavedAssignments preserves assignedGroupId values captured with a
	// saved template; empty for built-ins.
	SavedAssignments map[string]string `json:"savedAssignments,omitempty"`

	// CreatedAt is the Unix timestamp for saved templates; 0 for built-ins.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// AssignmentKey builds the SavedAssignments key for a name and category.
func AssignmentKey(name string, category PackingCategory) string {
	return name + "\x00" + string(category)
}
