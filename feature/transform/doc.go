// Package transform turns extracted entries into per-namespace catalog trees.
//
// The key materializer (DotPathToHash) writes one entry into a catalog,
// splitting the key on the configured separator into nested objects. The
// expander (Entries) folds a whole extraction run into a single tree keyed
// by namespace, expanding counted entries into one materialization per CLDR
// plural category.
//
// # Conflicts
//
// Two call sites can disagree about a key. A KeyConflict means a key path
// runs through a string leaf (or a parent of a new key was already a
// string); the fresh object wins and the conflict is reported. A
// ValueConflict means the same key was materialized twice with different
// non-empty defaults; the newer value wins. Conflicts are warnings; only a
// KeyConflict escalates to an error, and only when fail_on_warnings is set.
package transform
