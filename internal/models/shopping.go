package models

// ShoppingCategory splits the shopping list into its two aisles.
type ShoppingCategory string

// Shopping categories: meal-derived items are food, packing-derived items
// are camping.
const (
	ShopFood    ShoppingCategory = "food"
	ShopCamping ShoppingCategory = "camping"
)

// ValidShoppingCategory reports whether c is a known shopping category.
func ValidShoppingCategory(c ShoppingCategory) bool {
	return c == ShopFood || c == ShopCamping
}

// ShoppingItem is one entry on a trip's derived shopping list.
//
// Auto-generated entries carry SourceItemID pointing at the packing item or
// ingredient that raised needs-to-buy; manually added entries have none.
// IsChecked is user-owned purchase state and is never touched by merges.
type ShoppingItem struct {
	// ID is the unique identifier (UUID format).
	ID string `json:"id"`

	// Name is the item name.
	Name string `json:"name"`

	// Quantity is a positive count. Merging a candidate with the same
	// SourceItemID adds to this, never replaces it.
	Quantity int `json:"quantity"`

	// Category is food or camping.
	Category ShoppingCategory `json:"category"`

	// IsChecked marks the item as purchased.
	IsChecked bool `json:"isChecked"`

	// NeedsToBuy mirrors the source signal. Mutually exclusive with IsOwned.
	NeedsToBuy bool `json:"needsToBuy"`

	// IsOwned marks the item as already on hand.
	IsOwned bool `json:"isOwned"`

	// AssignedGroupID weakly references a Group on the owning trip.
	AssignedGroupID string `json:"assignedGroupId,omitempty"`

	// SourceItemID back-references the originating PackingItem or
	// Ingredient when auto-generated; empty for manual entries.
	SourceItemID string `json:"sourceItemId,omitempty"`

	// Cost splitting. These are inert value fields for the UI layer: the
	// reconciler persists and round-trips them but never reads them.
	Cost          float64            `json:"cost,omitempty"`
	PaidByGroupID string             `json:"paidByGroupId,omitempty"`
	Splits        map[string]float64 `json:"splits,omitempty"`
}

// SetOwned sets IsOwned and keeps the owned/needs-to-buy exclusivity.
func (s *ShoppingItem) SetOwned(owned bool) {
	s.IsOwned = owned
	if owned {
		s.NeedsToBuy = false
	}
}

// SetNeedsToBuy sets NeedsToBuy and keeps the owned/needs-to-buy exclusivity.
func (s *ShoppingItem) SetNeedsToBuy(needs bool) {
	s.NeedsToBuy = needs
	if needs {
		s.IsOwned = false
	}
}
