package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"packmule/internal/models"
)

// SaveGear upserts a gear item.
func (s *SQLiteStore) SaveGear(ctx context.Context, gear *models.GearItem) error {
	if gear.ID == "" {
		gear.ID = uuid.New().String()
	}
	data, err := json.Marshal(gear)
	if err != nil {
		return fmt.Errorf("failed to encode gear: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO gear (id, category, data) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET category = excluded.category, data = excluded.data`,
		gear.ID, string(gear.Category), data,
	)
	if err != nil {
		return fmt.Errorf("failed to save gear: %w", err)
	}
	return nil
}

// GetGear retrieves a gear item by ID. Returns (nil, nil) if absent.
func (s *SQLiteStore) GetGear(ctx context.Context, gearID string) (*models.GearItem, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM gear WHERE id = ?", gearID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gear: %w", err)
	}
	var gear models.GearItem
	if err := json.Unmarshal(data, &gear); err != nil {
		return nil, fmt.Errorf("failed to decode gear record: %w", err)
	}
	return &gear, nil
}

// ListGear returns gear items ordered by name, filtered by category when
// category is non-empty. The category column is the secondary index.
func (s *SQLiteStore) ListGear(ctx context.Context, category models.PackingCategory) ([]models.GearItem, error) {
	query := "SELECT data FROM gear"
	args := []any{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, string(category))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gear: %w", err)
	}
	defer rows.Close()

	var items []models.GearItem
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan gear: %w", err)
		}
		var gear models.GearItem
		if err := json.Unmarshal(data, &gear); err != nil {
			return nil, fmt.Errorf("failed to decode gear record: %w", err)
		}
		items = append(items, gear)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gear: %w", err)
	}

	// Name ordering lives outside SQL because names are inside the JSON
	// record.
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// DeleteGear deletes a gear item. Deleting an absent item is a no-op.
func (s *SQLiteStore) DeleteGear(ctx context.Context, gearID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM gear WHERE id = ?", gearID); err != nil {
		return fmt.Errorf("failed to delete gear: %w", err)
	}
	return nil
}
