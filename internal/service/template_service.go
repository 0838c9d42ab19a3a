package service

import (
	"context"
	"fmt"
	"log/slog"

	"packmule/internal/models"
	"packmule/internal/preserve"
	"packmule/internal/template"
	"packmule/internal/validate"
)

// ApplyTemplate expands a named template, built-in or user-saved, into a
// fresh packing list for the trip and persists it. The expanded items carry
// new identities, so the result runs through the assignment preserver with
// the trip's current list as the prior set before it reaches the gate and
// the store.
func (s *TripService) ApplyTemplate(ctx context.Context, tripID, name string) ([]models.PackingItem, error) {
	defer s.lockTrip(tripID)()

	trip, err := s.requireTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	tpl, err := s.resolveTemplate(ctx, name, trip.Type)
	if err != nil {
		return nil, err
	}

	return s.applyExpanded(ctx, trip, template.Expand(tpl, trip))
}

// ResetToDefaultTemplate wholesale-replaces the trip's packing list with
// the built-in template for its type.
func (s *TripService) ResetToDefaultTemplate(ctx context.Context, tripID string) ([]models.PackingItem, error) {
	defer s.lockTrip(tripID)()

	trip, err := s.requireTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	items, err := template.ExpandDefault(trip)
	if err != nil {
		return nil, err
	}
	return s.applyExpanded(ctx, trip, items)
}

// applyExpanded is the shared preserve → validate → persist tail of every
// template application.
func (s *TripService) applyExpanded(ctx context.Context, trip *models.Trip, items []models.PackingItem) ([]models.PackingItem, error) {
	prior, err := s.store.GetPackingList(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	log, err := s.store.ListAssignments(ctx, trip.ID)
	if err != nil {
		return nil, err
	}

	items = preserve.Assignments(items, prior, log)
	validate.ClearDanglingGroupRefs(trip, items, nil, nil)
	if err := validate.PackingList(items); err != nil {
		return nil, err
	}
	if err := s.store.SavePackingList(ctx, trip.ID, items); err != nil {
		return nil, err
	}

	slog.Info("template applied", "trip_id", trip.ID, "items", len(items))
	return items, nil
}

// SaveTemplateFrom captures the trip's current packing list verbatim,
// group assignments included, as a saved template under the given name.
func (s *TripService) SaveTemplateFrom(ctx context.Context, tripID, name string) (*models.Template, error) {
	defer s.lockTrip(tripID)()

	trip, err := s.requireTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.GetPackingList(ctx, tripID)
	if err != nil {
		return nil, err
	}

	tpl := template.Capture(name, trip.Type, items)
	if err := validate.Template(tpl); err != nil {
		return nil, err
	}
	if err := s.store.SaveTemplate(ctx, tpl); err != nil {
		return nil, err
	}

	slog.Info("template saved", "name", name, "trip_id", tripID, "items", len(tpl.Items))
	return tpl, nil
}

// ListTemplates returns all user-saved templates.
func (s *TripService) ListTemplates(ctx context.Context) ([]models.Template, error) {
	return s.store.ListTemplates(ctx)
}

// resolveTemplate prefers a user-saved template over a built-in of the same
// name; an empty name selects the built-in for the trip type.
func (s *TripService) resolveTemplate(ctx context.Context, name string, tripType models.TripType) (*models.Template, error) {
	if name == "" {
		name = string(tripType)
	}
	if saved, err := s.store.GetTemplate(ctx, name); err != nil {
		return nil, err
	} else if saved != nil {
		return saved, nil
	}
	if tpl, ok := template.BuiltIn(models.TripType(name)); ok {
		return &tpl, nil
	}
	return nil, fmt.Errorf("template not found: %s", name)
}
