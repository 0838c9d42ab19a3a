// Package service orchestrates the core flows: template expansion,
// assignment preservation, validation, persistence, and shopping-list
// reconciliation. Handlers and the sync collaborator call in here; nothing
// below this layer is reachable from outside.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"packmule/internal/models"
	"packmule/internal/reconciler"
	"packmule/internal/storage"
	"packmule/internal/validate"
)

// ErrNotFound reports that a referenced trip or item does not exist.
var ErrNotFound = errors.New("not found")

// TripService owns all trip-scoped operations. It serializes logical
// operations per trip so that writes to the same partition+key are applied
// in the order they were issued; cross-process edits remain last-write-wins.
type TripService struct {
	store storage.Store
	rec   *reconciler.Reconciler

	mu        sync.Mutex
	tripLocks map[string]*sync.Mutex
}

// NewTripService creates a TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{
		store:     store,
		rec:       reconciler.New(store),
		tripLocks: make(map[string]*sync.Mutex),
	}
}

// lockTrip acquires the per-trip operation lock and returns its release.
func (s *TripService) lockTrip(tripID string) func() {
	s.mu.Lock()
	lock, ok := s.tripLocks[tripID]
	if !ok {
		lock = &sync.Mutex{}
		s.tripLocks[tripID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// GetTrips returns all trips ordered by start date. This is the read half
// of the sync collaborator contract: after a successful local write an
// immediate read returns the written value.
func (s *TripService) GetTrips(ctx context.Context) ([]models.Trip, error) {
	return s.store.ListTrips(ctx)
}

// GetTrip returns one trip, or (nil, nil) if absent.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	return s.store.GetTrip(ctx, tripID)
}

// SaveTrip validates and upserts a trip. When the trip's group set changed,
// items on its lists may now reference removed groups; those references are
// cleared in the same operation so a dangling reference never reaches a
// later read.
func (s *TripService) SaveTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID != "" {
		defer s.lockTrip(trip.ID)()
	}

	if err := validate.Trip(trip); err != nil {
		return err
	}
	if err := s.store.SaveTrip(ctx, trip); err != nil {
		return err
	}

	packing, err := s.store.GetPackingList(ctx, trip.ID)
	if err != nil {
		return err
	}
	meals, err := s.store.GetMeals(ctx, trip.ID)
	if err != nil {
		return err
	}
	shopping, err := s.store.GetShoppingList(ctx, trip.ID)
	if err != nil {
		return err
	}
	if cleared := validate.ClearDanglingGroupRefs(trip, packing, meals, shopping); cleared > 0 {
		if err := s.store.ReplaceTripLists(ctx, trip.ID, &packing, &meals, &shopping); err != nil {
			return fmt.Errorf("failed to persist cleared group references: %w", err)
		}
	}

	slog.Info("trip saved", "trip_id", trip.ID, "name", trip.Name)
	return nil
}

// DeleteTrip removes the trip and cascades to its packing, meal, and
// shopping partitions.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	defer s.lockTrip(tripID)()

	if err := s.store.DeleteTrip(ctx, tripID); err != nil {
		return err
	}
	slog.Info("trip deleted", "trip_id", tripID)
	return nil
}

// GetPackingList returns the trip's packing list.
func (s *TripService) GetPackingList(ctx context.Context, tripID string) ([]models.PackingItem, error) {
	return s.store.GetPackingList(ctx, tripID)
}

// SavePackingList wholesale-replaces the packing list after clearing
// dangling group references and validating the whole batch, then reruns
// shopping-list derivation since needs-to-buy flags may have changed.
func (s *TripService) SavePackingList(ctx context.Context, tripID string, items []models.PackingItem) error {
	defer s.lockTrip(tripID)()

	trip, err := s.requireTrip(ctx, tripID)
	if err != nil {
		return err
	}

	validate.ClearDanglingGroupRefs(trip, items, nil, nil)
	if err := validate.PackingList(items); err != nil {
		return err
	}
	if err := s.store.SavePackingList(ctx, tripID, items); err != nil {
		return err
	}
	return s.rec.Rederive(ctx, tripID)
}

// GetMeals returns the trip's meal list.
func (s *TripService) GetMeals(ctx context.Context, tripID string) ([]models.Meal, error) {
	return s.store.GetMeals(ctx, tripID)
}

// SaveMeals wholesale-replaces the meal list; same gate and rederivation
// flow as SavePackingList.
func (s *TripService) SaveMeals(ctx context.Context, tripID string, meals []models.Meal) error {
	defer s.lockTrip(tripID)()

	trip, err := s.requireTrip(ctx, tripID)
	if err != nil {
		return err
	}

	validate.ClearDanglingGroupRefs(trip, nil, meals, nil)
	if err := validate.Meals(meals); err != nil {
		return err
	}
	if err := s.store.SaveMeals(ctx, tripID, meals); err != nil {
		return err
	}
	return s.rec.Rederive(ctx, tripID)
}

// GetShoppingList returns the trip's shopping list.
func (s *TripService) GetShoppingList(ctx context.Context, tripID string) ([]models.ShoppingItem, error) {
	return s.store.GetShoppingList(ctx, tripID)
}

// SaveShoppingList wholesale-replaces the shopping list; this is the path
// for manual entries and purchase-state edits.
func (s *TripService) SaveShoppingList(ctx context.Context, tripID string, items []models.ShoppingItem) error {
	defer s.lockTrip(tripID)()

	trip, err := s.requireTrip(ctx, tripID)
	if err != nil {
		return err
	}

	validate.ClearDanglingGroupRefs(trip, nil, nil, items)
	if err := validate.ShoppingList(items); err != nil {
		return err
	}
	return s.store.SaveShoppingList(ctx, tripID, items)
}

// MergeShoppingList rebuilds the shopping list from current needs-to-buy
// signals.
func (s *TripService) MergeShoppingList(ctx context.Context, tripID string) error {
	defer s.lockTrip(tripID)()
	return s.rec.Rederive(ctx, tripID)
}

// ClearShoppingList runs the two-step clear: reset every needs-to-buy
// source flag, then empty the list.
func (s *TripService) ClearShoppingList(ctx context.Context, tripID string) error {
	defer s.lockTrip(tripID)()
	return s.rec.ClearAndResetSources(ctx, tripID)
}

// AssignGroup sets the group owner on a packing item and records the
// assignment in the append-only log so it can be recovered after the item's
// identity is regenerated.
func (s *TripService) AssignGroup(ctx context.Context, tripID, itemID, groupID string) error {
	defer s.lockTrip(tripID)()

	trip, err := s.requireTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if groupID != "" && !trip.HasGroup(groupID) {
		return &validate.Error{Kind: validate.KindGroup, Field: "id", Reason: "does not exist on this trip"}
	}

	items, err := s.store.GetPackingList(ctx, tripID)
	if err != nil {
		return err
	}

	var assigned *models.PackingItem
	for i := range items {
		if items[i].ID == itemID {
			items[i].AssignedGroupID = groupID
			assigned = &items[i]
			break
		}
	}
	if assigned == nil {
		return fmt.Errorf("packing item %s: %w", itemID, ErrNotFound)
	}

	if err := validate.PackingList(items); err != nil {
		return err
	}
	if err := s.store.SavePackingList(ctx, tripID, items); err != nil {
		return err
	}
	if groupID == "" {
		return nil
	}
	return s.store.AppendAssignment(ctx, &storage.AssignmentRecord{
		TripID:   tripID,
		Name:     assigned.Name,
		Category: assigned.Category,
		GroupID:  groupID,
	})
}

func (s *TripService) requireTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
	}
	return trip, nil
}
