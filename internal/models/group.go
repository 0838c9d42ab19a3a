package models

// GroupColor is one of the fixed palette colors a group can be shown with.
type GroupColor string

// The group color palette. Stored values outside this set are a decode
// failure, not a repair-with-default case.
const (
	ColorRed    GroupColor = "red"
	ColorOrange GroupColor = "orange"
	ColorYellow GroupColor = "yellow"
	ColorGreen  GroupColor = "green"
	ColorTeal   GroupColor = "teal"
	ColorBlue   GroupColor = "blue"
	ColorPurple GroupColor = "purple"
	ColorPink   GroupColor = "pink"
)

// ValidGroupColor reports whether c is in the palette.
func ValidGroupColor(c GroupColor) bool {
	switch c {
	case ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorTeal, ColorBlue, ColorPurple, ColorPink:
		return true
	}
	return false
}

// Group is a named sub-party within a trip (e.g. a family) that can own
// items. Items reference a group weakly by ID; the group itself lives only
// on the trip record.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name, e.g. "The Hendersons".
	Name string `json:"name"`

	// Size is the group's headcount. Must be positive.
	Size int `json:"size"`

	// Contact is optional contact info for the group's lead.
	Contact string `json:"contact,omitempty"`

	// Color is drawn from the fixed palette above.
	Color GroupColor `json:"color"`
}
