package transform

import (
	"fmt"

	"i18next-parser/core/catalog"
	"i18next-parser/core/config"
	"i18next-parser/core/utils"
	"i18next-parser/feature/plural"
	"i18next-parser/feature/scanner"

	"go.uber.org/zap"
)

// Result is the catalog tree built from one extraction run for one locale,
// with per-namespace counters.
type Result struct {
	// Value maps namespaces to their catalog trees.
	Value catalog.Object
	// UniqueCount counts conflict-free materializations per namespace.
	UniqueCount map[string]int
	// UniquePluralsCount counts the subset that carried a plural suffix.
	UniquePluralsCount map[string]int
}

// Entries folds all extracted entries for one locale into a Result. Counted
// entries expand to one materialization per plural category of the locale;
// an unresolvable locale skips pluralization for the entry and continues.
func Entries(entries []scanner.Entry, locale string, resolver *plural.Resolver, cfg *config.Config, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res := &Result{
		Value:              catalog.Object{},
		UniqueCount:        make(map[string]int),
		UniquePluralsCount: make(map[string]int),
	}

	for _, entry := range entries {
		if entry.HasCount && cfg.PluralSeparator != "" {
			suffixes, err := resolver.Suffixes(locale)
			if err != nil {
				log.Warn("Skipping pluralization for unresolvable locale",
					zap.String("locale", locale),
					zap.String("key", entry.Key),
					zap.Error(err))
				continue
			}
			for _, suffix := range suffixes {
				if err := res.apply(entry, suffix, true, cfg, log); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := res.apply(entry, "", false, cfg, log); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *Result) apply(entry scanner.Entry, suffix string, isPlural bool, cfg *config.Config, log *zap.Logger) error {
	ns := entry.Namespace
	if ns == "" {
		ns = cfg.DefaultNamespace
	}
	// Namespaces must appear in the counters even when every
	// materialization is a duplicate
	if _, ok := r.UniqueCount[ns]; !ok {
		r.UniqueCount[ns] = 0
		r.UniquePluralsCount[ns] = 0
	}

	if entry.Value == nil && cfg.DefaultValue != "" {
		v := cfg.DefaultValue
		entry.Value = &v
	}

	hr := DotPathToHash(entry, r.Value, suffix, cfg)
	r.Value = hr.Target

	switch c := hr.Conflict.(type) {
	case KeyConflict:
		if cfg.FailOnWarnings {
			return fmt.Errorf("translation key %s already mapped to a value at segment %q", c.Path, c.Segment)
		}
		log.Warn("Translation key already mapped to a value, overwriting with an object",
			zap.String("key", c.Path),
			zap.String("segment", c.Segment))
	case ValueConflict:
		log.Warn("Same key extracted with different values",
			zap.String("key", ns+cfg.NamespaceSeparator+entry.Key),
			zap.String("diff", utils.CharDiff(c.Old, c.New)))
	}

	if !hr.Duplicate {
		r.UniqueCount[ns]++
		if isPlural {
			r.UniquePluralsCount[ns]++
		}
	}
	return nil
}
