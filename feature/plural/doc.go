// Package plural resolves the CLDR plural categories a locale uses for
// cardinal numbers.
//
// i18next v4 stores one catalog entry per plural category, suffixed onto the
// key (key_one, key_other). Which categories a locale needs varies: English
// has two, French three, Arabic all six. The resolver answers that question
// per locale, backed by the CLDR data shipped with golang.org/x/text.
//
// # Resolution
//
// golang.org/x/text exposes plural rules as a classifier over number
// features, not as a category list. The resolver recovers the list by
// classifying a fixed set of sample numbers (integral and fractional) and
// collecting the distinct categories, ordered canonically as
// zero, one, two, few, many, other. Categories CLDR added after the revision
// x/text bundles (the Romance large-number many) are supplemented from a
// per-language table.
//
// Results are cached per locale. The resolver is safe for concurrent use.
package plural
