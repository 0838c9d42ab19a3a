package models

// PackingCategory is the fixed category set for packing items.
type PackingCategory string

// Packing categories.
const (
	CatShelter  PackingCategory = "Shelter"
	CatSleep    PackingCategory = "Sleep"
	CatKitchen  PackingCategory = "Kitchen"
	CatClothing PackingCategory = "Clothing"
	CatFood     PackingCategory = "Food"
	CatSafety   PackingCategory = "Safety"
	CatTools    PackingCategory = "Tools"
	CatPersonal PackingCategory = "Personal"
	CatOther    PackingCategory = "Other"
)

// ValidPackingCategory reports whether c is a known packing category.
func ValidPackingCategory(c PackingCategory) bool {
	switch c {
	case CatShelter, CatSleep, CatKitchen, CatClothing, CatFood, CatSafety, CatTools, CatPersonal, CatOther:
		return true
	}
	return false
}

// PackingItem is one entry on a trip's packing list.
//
// IsOwned and NeedsToBuy are mutually exclusive: every mutation path that
// sets one clears the other (see SetOwned/SetNeedsToBuy).
type PackingItem struct {
	// ID is the unique identifier for the item (UUID format). IDs are NOT
	// stable across template reloads or list resets; regeneration produces
	// fresh IDs, which is why group assignments are preserved by
	// (name, category) rather than by ID.
	ID string `json:"id"`

	// Name is the item name, e.g. "Tent".
	Name string `json:"name"`

	// Category is the packing category.
	Category PackingCategory `json:"category"`

	// Quantity is a positive count.
	Quantity int `json:"quantity"`

	// IsPacked marks the item as physically packed.
	IsPacked bool `json:"isPacked"`

	// IsOwned marks the item as already owned (nothing to buy).
	IsOwned bool `json:"isOwned"`

	// NeedsToBuy raises the signal that feeds the derived shopping list.
	NeedsToBuy bool `json:"needsToBuy"`

	// AssignedGroupID weakly references a Group on the owning trip.
	AssignedGroupID string `json:"assignedGroupId,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`
}

// SetOwned sets IsOwned and keeps the owned/needs-to-buy exclusivity.
func (p *PackingItem) SetOwned(owned bool) {
	p.IsOwned = owned
	if owned {
		p.NeedsToBuy = false
	}
}

// SetNeedsToBuy sets NeedsToBuy and keeps the owned/needs-to-buy exclusivity.
func (p *PackingItem) SetNeedsToBuy(needs bool) {
	p.NeedsToBuy = needs
	if needs {
		p.IsOwned = false
	}
}
