package scanner

// Entry is one extracted translation call site.
type Entry struct {
	// Key is the translation key with any namespace prefix already split off.
	Key string
	// Namespace is the resolved namespace, empty when the call site did not
	// name one.
	Namespace string
	// Value is the inline default value. nil means no default was given,
	// which is distinct from an explicit empty string.
	Value *string
	// HasCount reports whether the call site passed a count option, marking
	// the key for plural expansion.
	HasCount bool
	// Options holds the string-valued i18next options found at the call
	// site. Options with non-literal values are present with an empty value.
	Options map[string]string
}
