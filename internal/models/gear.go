package models

// GearItem is a piece of owned gear tracked independently of any one trip.
// Gear survives trip deletion; TripIDs only records which trips it is
// currently assigned to.
type GearItem struct {
	// ID is the unique identifier for the gear item (UUID format).
	ID string `json:"id"`

	// Name is the gear name, e.g. "MSR PocketRocket".
	Name string `json:"name"`

	// Category reuses the packing category set.
	Category PackingCategory `json:"category"`

	// WeightGrams is the optional dry weight; 0 means unknown.
	WeightGrams int `json:"weightGrams,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// TripIDs lists the trips this gear is assigned to.
	TripIDs []string `json:"tripIds,omitempty"`
}
