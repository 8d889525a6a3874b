// Package merger reconciles freshly extracted catalogs with the catalogs
// already on disk.
//
// # Merge
//
// Merge folds the keys of an iterated catalog into a clone of a base
// catalog. The orchestrator passes the fresh extraction as the base and the
// on-disk catalog as the iterated side, so translations already on disk win
// over extracted defaults, while keys that vanished from the source become
// orphans and move to the backup tree. A pull-back heuristic recognizes
// plural and context family members that only look orphaned and keeps them.
//
// # Reconciliation
//
// Per (locale, namespace) the orchestrator runs two passes: pass A against
// the on-disk catalog produces the tree to write, pass B against the _old
// backup catalog only measures how many keys a future run would restore.
// The union of both passes' orphan trees becomes the new backup catalog.
//
// All merge state is passed by value and returned; nothing is shared across
// invocations, so distinct (locale, namespace) pairs could merge in
// parallel.
package merger
