package transform

import (
	"strings"

	"i18next-parser/core/catalog"
	"i18next-parser/core/config"
	"i18next-parser/feature/scanner"
)

// Conflict is a disagreement between two call sites about one key.
type Conflict interface {
	conflict()
}

// KeyConflict reports a key path running through a string leaf.
type KeyConflict struct {
	// Path is the namespace-qualified key being materialized.
	Path string
	// Segment is the path segment that already held a string value.
	Segment string
}

// ValueConflict reports the same key materialized with two different
// non-empty values.
type ValueConflict struct {
	Old string
	New string
}

func (KeyConflict) conflict()   {}
func (ValueConflict) conflict() {}

// HashResult is the outcome of materializing one entry.
type HashResult struct {
	// Target is the updated catalog tree.
	Target catalog.Object
	// Duplicate reports that the materialization collided with earlier
	// state, so it must not count as unique.
	Duplicate bool
	// Conflict is non-nil when the entry collided with earlier state.
	Conflict Conflict
}

// keyUnescaper rewrites the two-character escape sequences source text
// captures literally into the characters they denote. Escaped backslashes
// are consumed first so they cannot form new sequences.
var keyUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

// DotPathToHash materializes one entry into a copy of target. The path is
// namespace + separator + key (+ plural suffix), split on the key separator
// into nested objects. The input tree is never mutated.
func DotPathToHash(entry scanner.Entry, target catalog.Object, suffix string, cfg *config.Config) HashResult {
	result := HashResult{Target: target.CloneObject()}
	if entry.Key == "" {
		return result
	}

	sep := cfg.KeySeparator
	ns := entry.Namespace
	if ns == "" {
		ns = cfg.DefaultNamespace
	}

	key := keyUnescaper.Replace(entry.Key) + suffix
	if sep != "" && strings.HasSuffix(key, sep) {
		key = strings.TrimSuffix(key, sep)
	}

	segments := []string{ns}
	if sep != "" {
		segments = append(segments, strings.Split(key, sep)...)
	} else {
		segments = append(segments, key)
	}

	inner := result.Target
	for _, segment := range segments[:len(segments)-1] {
		if segment == "" {
			continue
		}
		child, ok := inner[segment].(catalog.Object)
		if !ok {
			if _, isLeaf := inner[segment].(catalog.Leaf); isLeaf {
				// A parent of the new key is already a string; the fresh
				// object wins, but the materialization is not unique
				result.Conflict = KeyConflict{
					Path:    ns + cfg.NamespaceSeparator + entry.Key,
					Segment: segment,
				}
				result.Duplicate = true
			}
			child = catalog.Object{}
			inner[segment] = child
		}
		inner = child
	}

	last := segments[len(segments)-1]
	prior, hadPrior := inner[last].(catalog.Leaf)

	newValue := ""
	if entry.Value != nil {
		newValue = *entry.Value
	}
	if hadPrior {
		old := string(prior)
		switch {
		case old == newValue || old == "":
			// The new value stands
		case newValue == "":
			// Never regress a real value to blank
			newValue = old
		default:
			result.Conflict = ValueConflict{Old: old, New: newValue}
			result.Duplicate = true
		}
	}
	inner[last] = catalog.Leaf(strings.TrimSpace(newValue))

	return result
}
