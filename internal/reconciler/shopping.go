// Package reconciler derives and maintains the per-trip shopping list from
// the needs-to-buy signals raised by packing items and meal ingredients.
//
// The merge itself is a pure transformation over in-memory lists (see
// Merge); Reconciler wraps it with the store reads and writes. Purchase
// state (isChecked) and ownership state on existing entries are user-owned
// and never derived, so merges leave them untouched.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"packmule/internal/metrics"
	"packmule/internal/models"
	"packmule/internal/storage"
)

// ErrPartialClear wraps any failure of the two-step clear operation. The
// caller's only valid recovery is retrying the whole clear, so it receives
// a single failure regardless of which step failed.
var ErrPartialClear = errors.New("shopping list clear failed")

// Reconciler maintains shopping lists against a store.
type Reconciler struct {
	store storage.Store
}

// New creates a Reconciler backed by the given store.
func New(store storage.Store) *Reconciler {
	return &Reconciler{store: store}
}

// CandidatesFromPacking converts the needs-to-buy packing items into
// shopping candidates carrying a source reference.
func CandidatesFromPacking(items []models.PackingItem) []models.ShoppingItem {
	var out []models.ShoppingItem
	for _, item := range items {
		if !item.NeedsToBuy {
			continue
		}
		out = append(out, models.ShoppingItem{
			Name:            item.Name,
			Quantity:        item.Quantity,
			Category:        models.ShopCamping,
			NeedsToBuy:      true,
			AssignedGroupID: item.AssignedGroupID,
			SourceItemID:    item.ID,
		})
	}
	return out
}

// CandidatesFromMeals converts the needs-to-buy ingredients across all
// meals into shopping candidates carrying a source reference.
func CandidatesFromMeals(meals []models.Meal) []models.ShoppingItem {
	var out []models.ShoppingItem
	for _, meal := range meals {
		for _, in := range meal.Ingredients {
			if !in.NeedsToBuy {
				continue
			}
			out = append(out, models.ShoppingItem{
				Name:            in.Name,
				Quantity:        in.Quantity,
				Category:        models.ShopFood,
				NeedsToBuy:      true,
				AssignedGroupID: in.AssignedGroupID,
				SourceItemID:    in.ID,
			})
		}
	}
	return out
}

// Merge folds candidates into an existing shopping list and returns the new
// list. Matching is by source reference:
//
//   - A candidate whose sourceItemId is not on the list yet is appended as
//     a new entry with needsToBuy set.
//   - Two candidates in the same batch sharing a sourceItemId collapse into
//     one entry whose quantity is the sum (the same ingredient appearing in
//     multiple meals).
//   - A candidate whose sourceItemId already has an entry from an earlier
//     merge is skipped: merge only adds new candidates, which is what makes
//     re-merging the same batch a no-op, and it keeps user-owned isChecked
//     and isOwned state untouched.
//
// Candidates without a source reference are always appended.
func Merge(existing, candidates []models.ShoppingItem) []models.ShoppingItem {
	out := make([]models.ShoppingItem, len(existing))
	copy(out, existing)

	prior := make(map[string]bool, len(existing))
	for _, item := range existing {
		if item.SourceItemID != "" {
			prior[item.SourceItemID] = true
		}
	}

	added := make(map[string]int)
	for _, cand := range candidates {
		ref := cand.SourceItemID
		if ref != "" {
			if i, ok := added[ref]; ok {
				out[i].Quantity += cand.Quantity
				continue
			}
			if prior[ref] {
				continue
			}
		}

		item := cand
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.SetNeedsToBuy(true)
		out = append(out, item)
		if ref != "" {
			added[ref] = len(out) - 1
		}
	}
	return out
}

// MergeIntoShoppingList reads the trip's shopping list, merges the
// candidates, and writes the result back.
func (r *Reconciler) MergeIntoShoppingList(ctx context.Context, tripID string, candidates []models.ShoppingItem) error {
	existing, err := r.store.GetShoppingList(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to load shopping list: %w", err)
	}

	merged := Merge(existing, candidates)
	if err := r.store.SaveShoppingList(ctx, tripID, merged); err != nil {
		return fmt.Errorf("failed to save shopping list: %w", err)
	}

	metrics.ShoppingMerges.Inc()
	slog.Debug("shopping list merged",
		"trip_id", tripID,
		"candidates", len(candidates),
		"size", len(merged),
	)
	return nil
}

// Rederive rebuilds the shopping list from the trip's current packing and
// meal state, merging any newly raised needs-to-buy signals. Run whenever
// packing or meal needs-to-buy flags change.
func (r *Reconciler) Rederive(ctx context.Context, tripID string) error {
	packing, err := r.store.GetPackingList(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to load packing list: %w", err)
	}
	meals, err := r.store.GetMeals(ctx, tripID)
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}

	candidates := append(CandidatesFromPacking(packing), CandidatesFromMeals(meals)...)
	return r.MergeIntoShoppingList(ctx, tripID, candidates)
}

// ClearAndResetSources is the explicit "clear shopping list" operation: it
// resets needsToBuy on every packing item and meal ingredient for the trip
// (a bulk, unconditional reset) and replaces the shopping list with an
// empty list. The source resets are ordered before the shopping write and
// all three partition writes share one transaction, so a partial clear
// cannot persist; any failure surfaces as a single ErrPartialClear.
func (r *Reconciler) ClearAndResetSources(ctx context.Context, tripID string) error {
	packing, err := r.store.GetPackingList(ctx, tripID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPartialClear, err)
	}
	meals, err := r.store.GetMeals(ctx, tripID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPartialClear, err)
	}

	for i := range packing {
		packing[i].NeedsToBuy = false
	}
	for i := range meals {
		for j := range meals[i].Ingredients {
			meals[i].Ingredients[j].NeedsToBuy = false
		}
	}

	empty := []models.ShoppingItem{}
	if err := r.store.ReplaceTripLists(ctx, tripID, &packing, &meals, &empty); err != nil {
		return fmt.Errorf("%w: %w", ErrPartialClear, err)
	}

	slog.Info("shopping list cleared", "trip_id", tripID)
	return nil
}
