package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"packmule/internal/models"
)

// The three per-trip list partitions share one shape: trip id key, full
// ordered list serialized as a single JSON record. Wholesale replacement is
// the only write; there is no incremental patching.

func getList(ctx context.Context, db *sql.DB, table, tripID string, out any) error {
	var data []byte
	err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT items FROM %s WHERE trip_id = ?", table), tripID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get %s record: %w", table, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s record: %w", table, err)
	}
	return nil
}

func putList(ctx context.Context, ex interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, table, tripID string, list any) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", table, err)
	}
	_, err = ex.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (trip_id, items) VALUES (?, ?)
		 ON CONFLICT(trip_id) DO UPDATE SET items = excluded.items`, table),
		tripID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s record: %w", table, err)
	}
	return nil
}

// GetPackingList returns the trip's packing list; empty if absent.
func (s *SQLiteStore) GetPackingList(ctx context.Context, tripID string) ([]models.PackingItem, error) {
	items := []models.PackingItem{}
	if err := getList(ctx, s.db, "packing_lists", tripID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SavePackingList wholesale-replaces the trip's packing list.
func (s *SQLiteStore) SavePackingList(ctx context.Context, tripID string, items []models.PackingItem) error {
	if items == nil {
		items = []models.PackingItem{}
	}
	return putList(ctx, s.db, "packing_lists", tripID, items)
}

// GetMeals returns the trip's meal list; empty if absent.
func (s *SQLiteStore) GetMeals(ctx context.Context, tripID string) ([]models.Meal, error) {
	meals := []models.Meal{}
	if err := getList(ctx, s.db, "meals", tripID, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// SaveMeals wholesale-replaces the trip's meal list.
func (s *SQLiteStore) SaveMeals(ctx context.Context, tripID string, meals []models.Meal) error {
	if meals == nil {
		meals = []models.Meal{}
	}
	return putList(ctx, s.db, "meals", tripID, meals)
}

// GetShoppingList returns the trip's shopping list; empty if absent.
func (s *SQLiteStore) GetShoppingList(ctx context.Context, tripID string) ([]models.ShoppingItem, error) {
	items := []models.ShoppingItem{}
	if err := getList(ctx, s.db, "shopping_lists", tripID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveShoppingList wholesale-replaces the trip's shopping list.
func (s *SQLiteStore) SaveShoppingList(ctx context.Context, tripID string, items []models.ShoppingItem) error {
	if items == nil {
		items = []models.ShoppingItem{}
	}
	return putList(ctx, s.db, "shopping_lists", tripID, items)
}

// ReplaceTripLists replaces any combination of the trip's three list
// partitions in one transaction. A nil pointer leaves that partition
// untouched. Writes are applied in packing, meals, shopping order; either
// all commit or none do.
func (s *SQLiteStore) ReplaceTripLists(ctx context.Context, tripID string, packing *[]models.PackingItem, meals *[]models.Meal, shopping *[]models.ShoppingItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if packing != nil {
		if err := putList(ctx, tx, "packing_lists", tripID, *packing); err != nil {
			return err
		}
	}
	if meals != nil {
		if err := putList(ctx, tx, "meals", tripID, *meals); err != nil {
			return err
		}
	}
	if shopping != nil {
		if err := putList(ctx, tx, "shopping_lists", tripID, *shopping); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
