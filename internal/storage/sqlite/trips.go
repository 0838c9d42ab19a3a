package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"packmule/internal/models"
	"packmule/internal/validate"
)

// decodeTrip is the strict decode step at the storage boundary: the stored
// record either yields a valid Trip or an explicit decode failure. There is
// no best-effort construction from partially-shaped data.
func decodeTrip(data []byte) (*models.Trip, error) {
	var trip models.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("failed to decode trip record: %w", err)
	}
	for i := range trip.Groups {
		if err := validate.Group(&trip.Groups[i]); err != nil {
			return nil, fmt.Errorf("failed to decode trip record: %w", err)
		}
	}
	return &trip, nil
}

// SaveTrip upserts a trip record.
func (s *SQLiteStore) SaveTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if trip.CreatedAt == 0 {
		trip.CreatedAt = now
	}
	trip.UpdatedAt = now

	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to encode trip: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO trips (id, start_date, data) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET start_date = excluded.start_date, data = excluded.data`,
		trip.ID, trip.StartDate, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}
	return nil
}

// GetTrip retrieves a trip by ID. Returns (nil, nil) if absent.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM trips WHERE id = ?", tripID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return decodeTrip(data)
}

// ListTrips returns all trips ordered by start date.
func (s *SQLiteStore) ListTrips(ctx context.Context) ([]models.Trip, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT data FROM trips ORDER BY start_date, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trip, err := decodeTrip(data)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}
	return trips, nil
}

// DeleteTrip deletes the trip and its packing, meal, and shopping list
// records in one transaction. The cascade is a hard invariant: either the
// trip and all three list partitions go, or none do.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM trips WHERE id = ?",
		"DELETE FROM packing_lists WHERE trip_id = ?",
		"DELETE FROM meals WHERE trip_id = ?",
		"DELETE FROM shopping_lists WHERE trip_id = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, tripID); err != nil {
			return fmt.Errorf("failed to delete trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
