package sqlite

import (
	"context"
	"fmt"
	"time"

	"packmule/internal/storage"
)

// AppendAssignment appends one entry to the group-assignment log. The log
// is append-only; nothing updates or deletes entries, so the most recent
// entry for a (trip, name, category) key is the current intent.
func (s *SQLiteStore) AppendAssignment(ctx context.Context, rec *storage.AssignmentRecord) error {
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO group_assignments (trip_id, name, category, group_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.TripID, rec.Name, string(rec.Category), rec.GroupID, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append assignment: %w", err)
	}
	return nil
}

// ListAssignments returns the trip's assignment log entries in append order.
func (s *SQLiteStore) ListAssignments(ctx context.Context, tripID string) ([]storage.AssignmentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT trip_id, name, category, group_id, created_at
		 FROM group_assignments WHERE trip_id = ? ORDER BY seq`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var recs []storage.AssignmentRecord
	for rows.Next() {
		var rec storage.AssignmentRecord
		if err := rows.Scan(&rec.TripID, &rec.Name, &rec.Category, &rec.GroupID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}
	return recs, nil
}
