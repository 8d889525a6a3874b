// Package scanner extracts translation call sites from TypeScript and TSX
// source files.
//
// The scanner is lexical: it tokenizes just enough of the language to find
// t(...) calls and <Trans> elements while respecting string literals and
// comments, instead of building a full syntax tree. Dynamic keys (template
// literals, computed expressions) are out of reach by construction and are
// skipped.
//
// # Extraction
//
// Recognized shapes:
//   - t("key"), t("key", "default"), t("key", {...}), t("key", "default", {...})
//   - t("ns:key", ...) with the namespace split off the key
//   - options: defaultValue, ns, context (string literals), count (presence)
//   - <Trans i18nKey="..." ns="..." defaults="..." count={...}>children</Trans>
//     with the element's children flattened to the default value
//   - useTranslation("ns"), withTranslation("ns") and getFixedT(lng, "ns")
//     setting a file-scoped default namespace
//
// A literal context option additionally emits the key + separator + context
// variant of the entry.
//
// # Walking
//
// ScanDir matches files under a root against the configured glob patterns,
// skipping .git and node_modules, and scans them on a bounded worker pool.
// Entry order across files is not significant to downstream consumers.
package scanner
