package catalog

import (
	"encoding/json"
	"strconv"
)

// Node is one node of a catalog tree. The concrete types are Object, Leaf,
// List and Flag; nothing else implements the interface.
type Node interface {
	// Clone returns a deep copy of the node. Merge passes operate on clones
	// so that two passes over the same starting snapshot never alias.
	Clone() Node

	// Empty reports whether the node carries no content. Objects and lists
	// are empty when they have no children; leaves and flags never are.
	Empty() bool

	node()
}

// Object is an inner node: an unordered mapping from key to child node.
type Object map[string]Node

// Leaf is a translation string.
type Leaf string

// List is an ordered sequence of nodes.
type List []Node

// Flag is a boolean leaf, used by the merge engine to mark reset keys.
type Flag bool

func (Object) node() {}
func (Leaf) node()   {}
func (List) node()   {}
func (Flag) node()   {}

// Clone returns a deep copy of the object and all its children.
func (o Object) Clone() Node {
	if o == nil {
		return Object{}
	}
	clone := make(Object, len(o))
	for key, child := range o {
		if child == nil {
			clone[key] = nil
			continue
		}
		clone[key] = child.Clone()
	}
	return clone
}

// CloneObject is Clone with a concrete Object result.
func (o Object) CloneObject() Object {
	return o.Clone().(Object)
}

func (l Leaf) Clone() Node { return l }

func (l List) Clone() Node {
	clone := make(List, len(l))
	for i, child := range l {
		if child == nil {
			continue
		}
		clone[i] = child.Clone()
	}
	return clone
}

func (f Flag) Clone() Node { return f }

func (o Object) Empty() bool { return len(o) == 0 }
func (Leaf) Empty() bool     { return false }
func (l List) Empty() bool   { return len(l) == 0 }
func (Flag) Empty() bool     { return false }

// FromAny converts a value decoded from JSON or YAML into a Node tree.
// Numbers and nulls found in existing files are coerced to string leaves:
// a catalog is a string tree by contract, and the coercion keeps foreign
// values visible instead of dropping them.
func FromAny(value any) Node {
	switch v := value.(type) {
	case nil:
		return Leaf("")
	case map[string]any:
		obj := make(Object, len(v))
		for key, child := range v {
			obj[key] = FromAny(child)
		}
		return obj
	case []any:
		list := make(List, len(v))
		for i, child := range v {
			list[i] = FromAny(child)
		}
		return list
	case string:
		return Leaf(v)
	case bool:
		return Flag(v)
	case json.Number:
		return Leaf(v.String())
	case float64:
		return Leaf(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return Leaf(strconv.Itoa(v))
	default:
		return Leaf("")
	}
}
