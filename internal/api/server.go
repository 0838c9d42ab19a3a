// Package api exposes the core over JSON/HTTP. This is the boundary the
// remote sync collaborator and the app shell talk to; everything it does
// goes through the service layer's validate-then-persist paths.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"packmule/internal/models"
	"packmule/internal/reconciler"
	"packmule/internal/service"
	"packmule/internal/suggest"
	"packmule/internal/validate"
)

// Server provides the HTTP API.
type Server struct {
	svc     *service.TripService
	suggest *suggest.Client
	mux     *http.ServeMux
}

// NewServer creates a Server, registers all routes, and returns it.
// suggestClient may be nil when the suggestion feature is disabled.
func NewServer(svc *service.TripService, suggestClient *suggest.Client) *Server {
	s := &Server{svc: svc, suggest: suggestClient, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Handler returns the http.Handler to mount.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	// Trips (sync collaborator surface)
	s.mux.HandleFunc("GET /api/trips", s.handleListTrips)
	s.mux.HandleFunc("GET /api/trips/{id}", s.handleGetTrip)
	s.mux.HandleFunc("PUT /api/trips/{id}", s.handleSaveTrip)
	s.mux.HandleFunc("DELETE /api/trips/{id}", s.handleDeleteTrip)

	// Per-trip lists
	s.mux.HandleFunc("GET /api/trips/{id}/packing", s.handleGetPacking)
	s.mux.HandleFunc("PUT /api/trips/{id}/packing", s.handleSavePacking)
	s.mux.HandleFunc("GET /api/trips/{id}/meals", s.handleGetMeals)
	s.mux.HandleFunc("PUT /api/trips/{id}/meals", s.handleSaveMeals)
	s.mux.HandleFunc("GET /api/trips/{id}/shopping", s.handleGetShopping)
	s.mux.HandleFunc("PUT /api/trips/{id}/shopping", s.handleSaveShopping)
	s.mux.HandleFunc("POST /api/trips/{id}/shopping/merge", s.handleMergeShopping)
	s.mux.HandleFunc("POST /api/trips/{id}/shopping/clear", s.handleClearShopping)

	// Templates and assignments
	s.mux.HandleFunc("POST /api/trips/{id}/packing/template", s.handleApplyTemplate)
	s.mux.HandleFunc("POST /api/trips/{id}/packing/reset", s.handleResetTemplate)
	s.mux.HandleFunc("POST /api/trips/{id}/packing/{itemId}/assign", s.handleAssignGroup)
	s.mux.HandleFunc("GET /api/templates", s.handleListTemplates)
	s.mux.HandleFunc("POST /api/templates", s.handleSaveTemplate)

	// Gear
	s.mux.HandleFunc("GET /api/gear", s.handleListGear)
	s.mux.HandleFunc("PUT /api/gear/{id}", s.handleSaveGear)
	s.mux.HandleFunc("GET /api/gear/{id}", s.handleGetGear)
	s.mux.HandleFunc("DELETE /api/gear/{id}", s.handleDeleteGear)

	// Suggestions
	s.mux.HandleFunc("GET /api/suggest/locations", s.handleSuggest)

	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, reconciler.ErrPartialClear):
		// The caller's only recovery is retrying the whole clear.
		status = http.StatusInternalServerError
	}
	s.respond(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respond(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Trips
// ---------------------------------------------------------------------------

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.svc.GetTrips(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	s.respond(w, http.StatusOK, trips)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.svc.GetTrip(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	if trip == nil {
		s.respond(w, http.StatusNotFound, map[string]string{"error": "trip not found"})
		return
	}
	s.respond(w, http.StatusOK, trip)
}

func (s *Server) handleSaveTrip(w http.ResponseWriter, r *http.Request) {
	var trip models.Trip
	if !s.decode(w, r, &trip) {
		return
	}
	trip.ID = r.PathValue("id")
	if err := s.svc.SaveTrip(r.Context(), &trip); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, trip)
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteTrip(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

func (s *Server) handleGetPacking(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.GetPackingList(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleSavePacking(w http.ResponseWriter, r *http.Request) {
	var items []models.PackingItem
	if !s.decode(w, r, &items) {
		return
	}
	if err := s.svc.SavePackingList(r.Context(), r.PathValue("id"), items); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleGetMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := s.svc.GetMeals(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, meals)
}

func (s *Server) handleSaveMeals(w http.ResponseWriter, r *http.Request) {
	var meals []models.Meal
	if !s.decode(w, r, &meals) {
		return
	}
	if err := s.svc.SaveMeals(r.Context(), r.PathValue("id"), meals); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, meals)
}

func (s *Server) handleGetShopping(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.GetShoppingList(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleSaveShopping(w http.ResponseWriter, r *http.Request) {
	var items []models.ShoppingItem
	if !s.decode(w, r, &items) {
		return
	}
	if err := s.svc.SaveShoppingList(r.Context(), r.PathValue("id"), items); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleMergeShopping(w http.ResponseWriter, r *http.Request) {
	tripID := r.PathValue("id")
	if err := s.svc.MergeShoppingList(r.Context(), tripID); err != nil {
		s.respondError(w, err)
		return
	}
	items, err := s.svc.GetShoppingList(r.Context(), tripID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleClearShopping(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearShoppingList(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// ---------------------------------------------------------------------------
// Templates and assignments
// ---------------------------------------------------------------------------

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	items, err := s.svc.ApplyTemplate(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleResetTemplate(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.ResetToDefaultTemplate(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleAssignGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupID string `json:"groupId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.svc.AssignGroup(r.Context(), r.PathValue("id"), r.PathValue("itemId"), req.GroupID); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	tpls, err := s.svc.ListTemplates(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	if tpls == nil {
		tpls = []models.Template{}
	}
	s.respond(w, http.StatusOK, tpls)
}

func (s *Server) handleSaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TripID string `json:"tripId"`
		Name   string `json:"name"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	tpl, err := s.svc.SaveTemplateFrom(r.Context(), req.TripID, req.Name)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusCreated, tpl)
}

// ---------------------------------------------------------------------------
// Gear
// ---------------------------------------------------------------------------

func (s *Server) handleListGear(w http.ResponseWriter, r *http.Request) {
	category := models.PackingCategory(r.URL.Query().Get("category"))
	items, err := s.svc.ListGear(r.Context(), category)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if items == nil {
		items = []models.GearItem{}
	}
	s.respond(w, http.StatusOK, items)
}

func (s *Server) handleSaveGear(w http.ResponseWriter, r *http.Request) {
	var gear models.GearItem
	if !s.decode(w, r, &gear) {
		return
	}
	gear.ID = r.PathValue("id")
	if err := s.svc.SaveGear(r.Context(), &gear); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, gear)
}

func (s *Server) handleGetGear(w http.ResponseWriter, r *http.Request) {
	gear, err := s.svc.GetGear(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	if gear == nil {
		s.respond(w, http.StatusNotFound, map[string]string{"error": "gear not found"})
		return
	}
	s.respond(w, http.StatusOK, gear)
}

func (s *Server) handleDeleteGear(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteGear(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

// ---------------------------------------------------------------------------
// Suggestions
// ---------------------------------------------------------------------------

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if s.suggest == nil {
		s.respond(w, http.StatusNotFound, map[string]string{"error": "suggestions disabled"})
		return
	}
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respond(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}
	suggestions, err := s.suggest.Lookup(r.Context(), query)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}
	s.respond(w, http.StatusOK, suggestions)
}
