// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"packmule/internal/models"
)

// AssignmentRecord is one entry in the append-only group-assignment log.
// The log is written whenever a group assignment is made and is keyed by the
// stable logical identity (trip id, name, category) rather than the item ID,
// so assignments survive the identity churn of template reloads and resets.
type AssignmentRecord struct {
	TripID    string
	Name      string
	Category  models.PackingCategory
	GroupID   string
	CreatedAt int64
}

// Store defines the interface for trip data storage operations. This
// abstraction allows swapping storage backends without changing the service
// layer, and lets the recovery manager treat the backend as an opaque
// opener.
//
// Partition semantics: the packing, meal, and shopping collections are each
// keyed by trip id and hold the entire ordered list for that trip as a
// single record. Get calls on a missing key return an empty result, not an
// error.
type Store interface {
	// SaveTrip upserts a trip record.
	SaveTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID. Returns (nil, nil) if absent.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips returns all trips ordered by start date.
	ListTrips(ctx context.Context) ([]models.Trip, error)

	// DeleteTrip deletes the trip and, in the same transaction, its
	// packing, meal, and shopping list records. Deleting an absent trip is
	// a no-op.
	DeleteTrip(ctx context.Context, tripID string) error

	// GetPackingList returns the trip's packing list; empty if absent.
	GetPackingList(ctx context.Context, tripID string) ([]models.PackingItem, error)

	// SavePackingList wholesale-replaces the trip's packing list.
	SavePackingList(ctx context.Context, tripID string, items []models.PackingItem) error

	// GetMeals returns the trip's meal list; empty if absent.
	GetMeals(ctx context.Context, tripID string) ([]models.Meal, error)

	// SaveMeals wholesale-replaces the trip's meal list.
	SaveMeals(ctx context.Context, tripID string, meals []models.Meal) error

	// GetShoppingList returns the trip's shopping list; empty if absent.
	GetShoppingList(ctx context.Context, tripID string) ([]models.ShoppingItem, error)

	// SaveShoppingList wholesale-replaces the trip's shopping list.
	SaveShoppingList(ctx context.Context, tripID string, items []models.ShoppingItem) error

	// ReplaceTripLists replaces any combination of the trip's three list
	// partitions in a single transaction. A nil pointer leaves that
	// partition untouched; a pointer to an empty slice empties it. Writes
	// are applied in packing, meals, shopping order and either all commit
	// or none do. This is the multi-key primitive behind the two-step
	// shopping clear.
	ReplaceTripLists(ctx context.Context, tripID string, packing *[]models.PackingItem, meals *[]models.Meal, shopping *[]models.ShoppingItem) error

	// SaveGear upserts a gear item.
	SaveGear(ctx context.Context, gear *models.GearItem) error

	// GetGear retrieves a gear item by ID. Returns (nil, nil) if absent.
	GetGear(ctx context.Context, gearID string) (*models.GearItem, error)

	// ListGear returns gear items, filtered by category when category is
	// non-empty, ordered by name.
	ListGear(ctx context.Context, category models.PackingCategory) ([]models.GearItem, error)

	// DeleteGear deletes a gear item. Deleting an absent item is a no-op.
	DeleteGear(ctx context.Context, gearID string) error

	// AppendAssignment appends to the group-assignment log.
	AppendAssignment(ctx context.Context, rec *AssignmentRecord) error

	// ListAssignments returns the trip's assignment log entries in append
	// order.
	ListAssignments(ctx context.Context, tripID string) ([]AssignmentRecord, error)

	// SaveTemplate upserts a user-saved template by name.
	SaveTemplate(ctx context.Context, tpl *models.Template) error

	// GetTemplate retrieves a saved template by name. Returns (nil, nil)
	// if absent.
	GetTemplate(ctx context.Context, name string) (*models.Template, error)

	// ListTemplates returns all saved templates ordered by name.
	ListTemplates(ctx context.Context) ([]models.Template, error)

	// SchemaVersion reports the store's current schema version.
	SchemaVersion(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
