// Package preserve re-attaches previously chosen group owners to items that
// are functionally the same but carry newly generated identities after a
// template load or list reset.
//
// Item IDs are not stable across regeneration, but the user's intent (which
// sub-group owns this kind of item) should survive it. The lookup is
// two-tier: first the prior item list, then the append-only assignment log,
// which catches items whose identity changed through a code path that never
// put them in the prior list. Matching is case-sensitive and exact on
// (name, category); an item renamed between operations loses its
// assignment.
package preserve

import (
	"packmule/internal/models"
	"packmule/internal/storage"
)

type key struct {
	name     string
	category models.PackingCategory
}

// Assignments returns a copy of newItems with group assignments recovered
// from priorItems and, failing that, from the assignment log. Pure
// function: neither input is mutated. Items that already carry an
// assignment keep it.
func Assignments(newItems, priorItems []models.PackingItem, log []storage.AssignmentRecord) []models.PackingItem {
	prior := make(map[key]string, len(priorItems))
	for _, item := range priorItems {
		if item.AssignedGroupID != "" {
			prior[key{item.Name, item.Category}] = item.AssignedGroupID
		}
	}

	// The log is in append order; later entries win.
	logged := make(map[key]string, len(log))
	for _, rec := range log {
		logged[key{rec.Name, rec.Category}] = rec.GroupID
	}

	out := make([]models.PackingItem, len(newItems))
	copy(out, newItems)
	for i := range out {
		if out[i].AssignedGroupID != "" {
			continue
		}
		k := key{out[i].Name, out[i].Category}
		if groupID, ok := prior[k]; ok {
			out[i].AssignedGroupID = groupID
			continue
		}
		if groupID, ok := logged[k]; ok {
			out[i].AssignedGroupID = groupID
		}
	}
	return out
}
