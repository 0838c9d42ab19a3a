// Package models defines the core domain models for packmule.
//
// # Ownership
//
// A Trip owns its derived collections: the packing list, the meal plan, and
// the shopping list. Each collection is persisted per trip as a single
// ordered list, and is wholesale-replaced (never patched in place) on
// destructive operations such as "reset to template" and "clear list".
// GearItem has an independent lifecycle and survives trip deletion.
//
// # References
//
//   - Items reference a Group weakly via AssignedGroupID; the group is never
//     embedded in the item. A reference that no longer resolves against the
//     trip's current groups is cleared before it reaches storage.
//   - Auto-generated ShoppingItems carry a SourceItemID back-reference to the
//     packing item or ingredient that produced them; manually added shopping
//     items have none.
//
// # Design principles
//
//  1. Use ID strings instead of pointers for relationships to avoid circular
//     references.
//  2. Models are plain value types; all invariant enforcement lives in the
//     validate package and the mutation paths, not in the structs.
//  3. The JSON encoding of these types is also the stored representation of
//     the per-trip list records, so field tags are part of the schema.
package models
