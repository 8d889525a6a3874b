package merger

import (
	"reflect"
	"sort"
	"strings"

	"i18next-parser/core/catalog"
	"i18next-parser/core/config"
	"i18next-parser/feature/plural"
)

// Result carries the outcome of one merge: the reconciled tree, the orphaned
// keys, the reset flags, and the counters summed up from every nesting level.
type Result struct {
	// New is the reconciled catalog.
	New catalog.Object
	// Old holds orphaned keys and their values.
	Old catalog.Object
	// Reset mirrors the shape of New with true flags at keys whose value
	// must be re-translated.
	Reset catalog.Object
	// MergeCount counts keys visited in both trees.
	MergeCount int
	// PullCount counts keys pulled back in through family detection.
	PullCount int
	// OldCount counts orphaned keys, wherever they ended up.
	OldCount int
	// ResetCount counts keys flagged for re-translation.
	ResetCount int
}

// Merge folds the keys of source into a clone of existing. existing is the
// base: its keys pass through untouched unless source mentions them. A nil
// source is the identity merge. resetValues marks keys to force-reset;
// resetAndFlag extends that to every non-plural key whose values differ.
// Neither input tree is mutated.
func Merge(existing, source, resetValues catalog.Object, fullKeyPrefix string, resetAndFlag bool, cfg *config.Config) Result {
	result := Result{
		New:   existing.CloneObject(),
		Old:   catalog.Object{},
		Reset: catalog.Object{},
	}
	if source == nil {
		return result
	}

	// Deterministic order: pull-back decisions inspect keys folded in
	// earlier in the same pass
	keys := make([]string, 0, len(source))
	for key := range source {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := source[key]
		target, exists := result.New[key]
		targetObj, targetIsObj := target.(catalog.Object)
		valueObj, valueIsObj := value.(catalog.Object)

		switch {
		case exists && targetIsObj && valueIsObj:
			var nestedReset catalog.Object
			if rv, ok := resetValues[key].(catalog.Object); ok {
				nestedReset = rv
			}
			nested := Merge(targetObj, valueObj, nestedReset,
				fullKeyPrefix+key+cfg.KeySeparator, resetAndFlag, cfg)
			result.New[key] = nested.New
			result.MergeCount += nested.MergeCount
			result.PullCount += nested.PullCount
			result.OldCount += nested.OldCount
			result.ResetCount += nested.ResetCount
			if !nested.Old.Empty() {
				result.Old[key] = nested.Old
			}
			if !nested.Reset.Empty() {
				result.Reset[key] = nested.Reset
			}

		case exists && !targetIsObj && !isLeafOrList(value):
			// Structurally incompatible, never silently coerce
			result.Old[key] = value.Clone()
			result.OldCount++

		case exists && ((resetAndFlag && !isPluralKey(key, cfg.PluralSeparator) && !nodesEqual(value, target)) || hasKey(resetValues, key)):
			result.Old[key] = value.Clone()
			result.OldCount++
			result.Reset[key] = catalog.Flag(true)
			result.ResetCount++

		case exists:
			if !regressesToEmpty(value, target) {
				result.New[key] = value.Clone()
			}
			result.MergeCount++

		default:
			singular := singularForm(key, cfg.PluralSeparator)
			pluralMatch := singular != key
			rawKey, contextMatch := stripContextToken(singular, cfg.ContextSeparator)

			if (contextMatch && hasKey(result.New, rawKey)) ||
				(pluralMatch && hasPluralSibling(result.New, singular, cfg.PluralSeparator)) {
				// A family member whose category was not regenerated this
				// pass, not a truly new key
				result.New[key] = value.Clone()
				result.PullCount++
			} else {
				if cfg.KeepRemoved {
					result.New[key] = value.Clone()
				} else {
					result.Old[key] = value.Clone()
				}
				result.OldCount++
			}
		}
	}
	return result
}

// isPluralKey reports whether key ends with a plural category appended via
// the separator.
func isPluralKey(key, separator string) bool {
	if separator == "" {
		return false
	}
	for _, category := range plural.Categories {
		if strings.HasSuffix(key, separator+category) {
			return true
		}
	}
	return false
}

// singularForm strips one trailing plural category suffix.
func singularForm(key, separator string) string {
	if separator == "" {
		return key
	}
	for _, category := range plural.Categories {
		if strings.HasSuffix(key, separator+category) {
			return strings.TrimSuffix(key, separator+category)
		}
	}
	return key
}

// stripContextToken strips one trailing context token and reports whether
// the key carried one.
func stripContextToken(key, separator string) (string, bool) {
	if separator == "" {
		return key, false
	}
	idx := strings.LastIndex(key, separator)
	if idx < 0 {
		return key, false
	}
	return key[:idx], true
}

// hasPluralSibling reports whether obj holds any plural category variant of
// the singular key.
func hasPluralSibling(obj catalog.Object, singular, separator string) bool {
	for _, category := range plural.Categories {
		if hasKey(obj, singular+separator+category) {
			return true
		}
	}
	return false
}

// regressesToEmpty reports whether overwriting target with value would
// replace a non-empty leaf by an empty one.
func regressesToEmpty(value, target catalog.Node) bool {
	vl, ok := value.(catalog.Leaf)
	if !ok || vl != "" {
		return false
	}
	tl, ok := target.(catalog.Leaf)
	return ok && tl != ""
}

func isLeafOrList(n catalog.Node) bool {
	switch n.(type) {
	case catalog.Leaf, catalog.List:
		return true
	}
	return false
}

func hasKey(obj catalog.Object, key string) bool {
	_, ok := obj[key]
	return ok
}

func nodesEqual(a, b catalog.Node) bool {
	return reflect.DeepEqual(a, b)
}
