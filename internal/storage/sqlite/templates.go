package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"packmule/internal/models"
)

// SaveTemplate upserts a user-saved template by name.
func (s *SQLiteStore) SaveTemplate(ctx context.Context, tpl *models.Template) error {
	if tpl.CreatedAt == 0 {
		tpl.CreatedAt = time.Now().Unix()
	}
	data, err := json.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("failed to encode template: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO templates (name, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, created_at = excluded.created_at`,
		tpl.Name, data, tpl.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// GetTemplate retrieves a saved template by name. Returns (nil, nil) if
// absent.
func (s *SQLiteStore) GetTemplate(ctx context.Context, name string) (*models.Template, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM templates WHERE name = ?", name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	var tpl models.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("failed to decode template record: %w", err)
	}
	return &tpl, nil
}

// ListTemplates returns all saved templates ordered by name.
func (s *SQLiteStore) ListTemplates(ctx context.Context) ([]models.Template, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT data FROM templates ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var tpls []models.Template
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		var tpl models.Template
		if err := json.Unmarshal(data, &tpl); err != nil {
			return nil, fmt.Errorf("failed to decode template record: %w", err)
		}
		tpls = append(tpls, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate templates: %w", err)
	}
	return tpls, nil
}
