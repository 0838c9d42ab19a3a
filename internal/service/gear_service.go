package service

import (
	"context"

	"packmule/internal/models"
	"packmule/internal/validate"
)

// Gear has an independent lifecycle from trips; nothing here takes the
// per-trip lock.

// SaveGear validates and upserts a gear item.
func (s *TripService) SaveGear(ctx context.Context, gear *models.GearItem) error {
	if err := validate.Gear(gear); err != nil {
		return err
	}
	return s.store.SaveGear(ctx, gear)
}

// GetGear returns one gear item, or (nil, nil) if absent.
func (s *TripService) GetGear(ctx context.Context, gearID string) (*models.GearItem, error) {
	return s.store.GetGear(ctx, gearID)
}

// ListGear returns gear, optionally filtered by category.
func (s *TripService) ListGear(ctx context.Context, category models.PackingCategory) ([]models.GearItem, error) {
	return s.store.ListGear(ctx, category)
}

// DeleteGear removes a gear item.
func (s *TripService) DeleteGear(ctx context.Context, gearID string) error {
	return s.store.DeleteGear(ctx, gearID)
}
