package models

import "time"

// TripType identifies the kind of trip and selects the default packing
// template.
type TripType string

// Built-in trip types.
const (
	TripCarCamping  TripType = "car-camping"
	TripBackpacking TripType = "backpacking"
	TripCanoe       TripType = "canoe"
	TripCabin       TripType = "cabin"
)

// ValidTripType reports whether t is one of the known trip types.
func ValidTripType(t TripType) bool {
	switch t {
	case TripCarCamping, TripBackpacking, TripCanoe, TripCabin:
		return true
	}
	return false
}

// Trip is the top-level planning unit. It owns the packing list, meal plan,
// and shopping list for its ID; deleting a trip cascades to those partitions.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `json:"id"`

	// Name is the human-readable trip name, e.g. "Weekend at the Lake".
	Name string `json:"name"`

	// Type selects the default packing template.
	Type TripType `json:"type"`

	// StartDate and EndDate bound the trip, in "2006-01-02" form.
	// The duration used for template scaling is the inclusive day count.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// PartySize is the flat headcount when Groups is empty. When Groups is
	// non-empty the effective party size is the sum of group sizes.
	PartySize int `json:"partySize"`

	// Groups is the optional named sub-party model.
	Groups []Group `json:"groups,omitempty"`

	// Activities are free-form activity labels ("hiking", "fishing").
	Activities []string `json:"activities,omitempty"`

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// TotalPartySize returns the effective headcount: the sum of group sizes
// when groups are defined, otherwise the flat PartySize.
func (t *Trip) TotalPartySize() int {
	if len(t.Groups) == 0 {
		return t.PartySize
	}
	total := 0
	for _, g := range t.Groups {
		total += g.Size
	}
	return total
}

// DurationDays returns the inclusive day count between StartDate and
// EndDate, or 1 if either date fails to parse or the range is inverted.
func (t *Trip) DurationDays() int {
	start, err := time.Parse("2006-01-02", t.StartDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse("2006-01-02", t.EndDate)
	if err != nil {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// HasGroup reports whether groupID matches a group in the trip's current
// group set. An empty groupID never matches.
func (t *Trip) HasGroup(groupID string) bool {
	for _, g := range t.Groups {
		if g.ID == groupID {
			return true
		}
	}
	return false
}
