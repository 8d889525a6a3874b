// Package catalog defines the translation catalog tree and its on-disk formats.
//
// A catalog is the translation content of one namespace for one locale: a tree
// whose inner nodes are string-keyed objects and whose leaves are translated
// strings. The tree is modeled as an explicit tagged union (Object, Leaf, List,
// Flag) instead of a dynamically typed value, so every "is this node an object
// or a leaf" decision is an exhaustive type switch.
//
// # Node Types
//
//   - Object: string-keyed mapping to child nodes. Marshals with sorted keys,
//     so serialized output is deterministic.
//   - Leaf: a translation string.
//   - List: an ordered sequence of nodes (arrays found in existing files are
//     carried through untouched).
//   - Flag: a boolean leaf. Only produced by the merge engine to mark
//     force-reset keys; never written to a translation file.
//
// # Files
//
// ReadFile and WriteFile handle the two supported formats, selected by file
// extension: JSON (pretty-printed, two-space indent) and YAML (.yml/.yaml).
// A missing file reads as a nil tree, not an error. WriteFile creates parent
// directories and applies the configured line-ending mode.
package catalog
