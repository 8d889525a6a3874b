package plural

import (
	"fmt"
	"strings"
	"sync"

	xplural "golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// categoryNames maps the CLDR plural forms to their i18next suffix names.
var categoryNames = map[xplural.Form]string{
	xplural.Zero:  "zero",
	xplural.One:   "one",
	xplural.Two:   "two",
	xplural.Few:   "few",
	xplural.Many:  "many",
	xplural.Other: "other",
}

// canonicalOrder is the CLDR ordering of plural categories. Suffix lists are
// always emitted in this order regardless of which categories a locale uses.
var canonicalOrder = []xplural.Form{
	xplural.Zero,
	xplural.One,
	xplural.Two,
	xplural.Few,
	xplural.Many,
	xplural.Other,
}

// Categories lists every plural category name a key suffix can carry.
var Categories = []string{"zero", "one", "two", "few", "many", "other"}

// IsCategory reports whether s is a CLDR plural category name.
func IsCategory(s string) bool {
	switch s {
	case "zero", "one", "two", "few", "many", "other":
		return true
	}
	return false
}

// cldrSupplements lists plural categories added to CLDR after the revision
// bundled with x/text, keyed by base language. The rule probe below can never
// discover these, so they are merged into the probed set. CLDR gave the
// Romance languages a large-number "many" (1000000, "1 million de jours").
var cldrSupplements = map[string][]xplural.Form{
	"es": {xplural.Many},
	"fr": {xplural.Many},
	"it": {xplural.Many},
	"pt": {xplural.Many},
}

// sampleInts are the integral values classified to discover a locale's
// categories. They cover the modular arithmetic of every CLDR cardinal rule:
// small values for one/two/few, the 11..99 band for many, 100..130 for the
// hundreds wrap-around, and millions for the French style many.
var sampleInts = func() []int {
	samples := make([]int, 0, 140)
	for i := 0; i <= 130; i++ {
		samples = append(samples, i)
	}
	samples = append(samples, 200, 1000, 10000, 100000, 1000000, 2000000, 3000000)
	return samples
}()

// Resolver resolves plural suffixes per locale and caches the results.
type Resolver struct {
	prepend string

	mu    sync.RWMutex
	cache map[string][]string
}

// NewResolver returns a Resolver that joins each category onto keys with the
// given separator, typically "_".
func NewResolver(prepend string) *Resolver {
	return &Resolver{
		prepend: prepend,
		cache:   make(map[string][]string),
	}
}

// Suffixes returns the plural key suffixes for a locale, separator included,
// in canonical category order. English yields [_one _other], Arabic all six
// categories. Locale codes may use an underscore in place of a hyphen.
// Unparseable locale codes return an error.
func (r *Resolver) Suffixes(locale string) ([]string, error) {
	r.mu.RLock()
	cached, ok := r.cache[locale]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q: %w", locale, err)
	}

	seen := make(map[xplural.Form]bool, len(canonicalOrder))
	for _, i := range sampleInts {
		seen[xplural.Cardinal.MatchPlural(tag, i, 0, 0, 0, 0)] = true
		// A fractional sample (i.5) catches categories that only apply
		// to non-integral numbers, e.g. Czech many
		seen[xplural.Cardinal.MatchPlural(tag, i, 1, 1, 5, 5)] = true
	}

	base, _ := tag.Base()
	for _, form := range cldrSupplements[base.String()] {
		seen[form] = true
	}

	suffixes := make([]string, 0, len(seen))
	for _, form := range canonicalOrder {
		if seen[form] {
			suffixes = append(suffixes, r.prepend+categoryNames[form])
		}
	}

	r.mu.Lock()
	r.cache[locale] = suffixes
	r.mu.Unlock()

	return suffixes, nil
}
