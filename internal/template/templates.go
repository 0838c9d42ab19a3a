package template

import "packmule/internal/models"

// Built-in templates, one per trip type. Quantities are per-trip unless
// flagged: PerPerson scales with the party headcount, PerDay with the
// inclusive day count, and the two compose.
var builtins = map[models.TripType]models.Template{
	models.TripCarCamping: {
		Name:     string(models.TripCarCamping),
		TripType: models.TripCarCamping,
		Items: []models.TemplateItem{
			{Name: "Tent", Category: models.CatShelter, Quantity: 1},
			{Name: "Tarp", Category: models.CatShelter, Quantity: 1},
			{Name: "Sleeping bag", Category: models.CatSleep, Quantity: 1, PerPerson: true},
			{Name: "Sleeping pad", Category: models.CatSleep, Quantity: 1, PerPerson: true},
			{Name: "Pillow", Category: models.CatSleep, Quantity: 1, PerPerson: true},
			{Name: "Camp stove", Category: models.CatKitchen, Quantity: 1},
			{Name: "Fuel canister", Category: models.CatKitchen, Quantity: 2},
			{Name: "Cooler", Category: models.CatKitchen, Quantity: 1},
			{Name: "Mess kit", Category: models.CatKitchen, Quantity: 1, PerPerson: true},
			{Name: "Water bottle", Category: models.CatKitchen, Quantity: 1, PerPerson: true},
			{Name: "Camp chair", Category: models.CatOther, Quantity: 1, PerPerson: true},
			{Name: "Headlamp", Category: models.CatTools, Quantity: 1, PerPerson: true},
			{Name: "Lantern", Category: models.CatTools, Quantity: 1},
			{Name: "First aid kit", Category: models.CatSafety, Quantity: 1},
			{Name: "Sunscreen", Category: models.CatPersonal, Quantity: 1},
			{Name: "Bug spray", Category: models.CatPersonal, Quantity: 1},
			{Name: "Trash bags", Category: models.CatOther, Quantity: 1, PerDay: true},
			{Name: "Firewood bundle", Category: models.CatOther, Quantity: 1, PerDay: true},
		},
	},
	models.TripBackpacking: {
		Name:     string(models.TripBackpacking),
		TripType: models.TripBackpacking,
		Items: []models.TemplateItem{
			{Name: "Backpack", Category: models.CatOther, Quantity: 1, PerPerson: true},
			{Name: "Tent", Category: models.CatShelter, Quantity: 1},
			{Name: "Sleeping bag", Category: models.CatSleep, Quantity: 1, PerPerson: true},
			{Name: "Sleeping pad", Category: models.CatSleep, Quantity: 1, PerPerson: true},
			{Name: "Camp stove", Category: models.CatKitchen, Quantity: 1},
			{Name: "Fuel canister", Category: models.CatKitchen, Quantity: 1},
			{Name: "Water filter", Category: models.CatKitchen, Quantity: 1},
			{Name: "Water bottle", Category: models.CatKitchen, Quantity: 1, PerPerson: true},
			{Name: "Dehydrated meal", Category: models.CatFood, Quantity: 2, PerPerson: true, PerDay: true},
			{Name: "Trail snacks", Category: models.CatFood, Quantity: 1, PerPerson: true, PerDay: true},
			{Name: "Headlamp", Category: models.CatTools, Quantity: 1, PerPerson: true},
			{Name: "Map and compass", Category: models.CatTools, Quantity: 1},
			{Name: "First aid kit", Category: models.CatSafety, Quantity: 1},
			{Name: "Bear canister", Category: models.CatSafety, Quantity: 1},
			{Name: "Rain jacket", Category: models.CatClothing, Quantity: 1, PerPerson: true},
			{Name: "Hiking socks", Category: models.CatClothing, Quantity: 1, PerPerson: true, PerDay: true},
		},
	},
	models.TripCanoe: {
		Name:     string(models.TripCanoe),
		TripType: models.TripCanoe,
		Items: []models.TemplateItem{
			{Name: "Canoe", Category: models.CatOther, Quantity: 1},
			{Name: "Paddle", Category: models.CatTools, Quantity: 1, PerPerson: true},
			{Name: "Life jacket", Category: models.CatSafety, Quantity: 1, PerPerson: true},
			{Name: "Dry bag", Category: models.CatOther, Quantity: 1, PerPerson: true},
			{Name: "Tent", Category: models.CatShelter, Quantity: 1},
			{Name: "Sleeping bag", Category: models.CatSleep, Quantity: 1, PerPerson: true},
			{Name: "Camp stove", Category: models.CatKitchen, Quantity: 1},
			{Name: "Water bottle", Category: models.CatKitchen, Quantity: 1, PerPerson: true},
			{Name: "Rope", Category: models.CatTools, Quantity: 1},
			{Name: "First aid kit", Category: models.CatSafety, Quantity: 1},
			{Name: "Sunscreen", Category: models.CatPersonal, Quantity: 1},
		},
	},
	models.TripCabin: {
		Name:     string(models.TripCabin),
		TripType: models.TripCabin,
		Items: []models.TemplateItem{
			{Name: "Bedding", Category: models.CatSleep, Quantity: 1, PerPerson: true},
			{Name: "Towel", Category: models.CatPersonal, Quantity: 1, PerPerson: true},
			{Name: "Board games", Category: models.CatOther, Quantity: 2},
			{Name: "Groceries tote", Category: models.CatFood, Quantity: 1, PerDay: true},
			{Name: "Water bottle", Category: models.CatKitchen, Quantity: 1, PerPerson: true},
			{Name: "First aid kit", Category: models.CatSafety, Quantity: 1},
			{Name: "Flashlight", Category: models.CatTools, Quantity: 1},
			{Name: "Indoor shoes", Category: models.CatClothing, Quantity: 1, PerPerson: true},
		},
	},
}

// BuiltIn returns the built-in template for a trip type.
func BuiltIn(tripType models.TripType) (models.Template, bool) {
	tpl, ok := builtins[tripType]
	return tpl, ok
}
