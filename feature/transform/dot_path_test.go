package transform

import (
	"testing"

	"i18next-parser/core/catalog"
	"i18next-parser/core/config"
	"i18next-parser/feature/scanner"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	return &config.Config{
		Locales:            []string{"en"},
		DefaultNamespace:   "translation",
		KeySeparator:       ".",
		NamespaceSeparator: ":",
		PluralSeparator:    "_",
		ContextSeparator:   "_",
	}
}

func strPtr(s string) *string { return &s }

func TestDotPathToHashCreatesPath(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "deep.key", Value: strPtr("default_value")}

	result := DotPathToHash(entry, catalog.Object{}, "", testConfig())

	assert.Equal(t, catalog.Object{
		"ns": catalog.Object{
			"deep": catalog.Object{"key": catalog.Leaf("default_value")},
		},
	}, result.Target)
	assert.False(t, result.Duplicate)
	assert.Nil(t, result.Conflict)
}

func TestDotPathToHashEmptyKey(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Value: strPtr("default_value")}

	result := DotPathToHash(entry, catalog.Object{}, "", testConfig())

	assert.Equal(t, catalog.Object{}, result.Target)
	assert.False(t, result.Duplicate)
	assert.Nil(t, result.Conflict)
}

func TestDotPathToHashDefaultNamespace(t *testing.T) {
	entry := scanner.Entry{Key: "key", Value: strPtr("v")}

	result := DotPathToHash(entry, catalog.Object{}, "", testConfig())

	assert.Equal(t, catalog.Object{
		"translation": catalog.Object{"key": catalog.Leaf("v")},
	}, result.Target)
}

func TestDotPathToHashValueConflict(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "key", Value: strPtr("new_value")}
	target := catalog.Object{"ns": catalog.Object{"key": catalog.Leaf("existing_value")}}

	result := DotPathToHash(entry, target, "", testConfig())

	assert.Equal(t, catalog.Object{
		"ns": catalog.Object{"key": catalog.Leaf("new_value")},
	}, result.Target)
	assert.True(t, result.Duplicate)
	assert.Equal(t, ValueConflict{Old: "existing_value", New: "new_value"}, result.Conflict)
}

func TestDotPathToHashEqualValueIsNotAConflict(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "key", Value: strPtr("same")}
	target := catalog.Object{"ns": catalog.Object{"key": catalog.Leaf("same")}}

	result := DotPathToHash(entry, target, "", testConfig())

	assert.False(t, result.Duplicate)
	assert.Nil(t, result.Conflict)
}

func TestDotPathToHashNeverRegressesToEmpty(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "key", Value: strPtr("")}
	target := catalog.Object{"ns": catalog.Object{"key": catalog.Leaf("keep")}}

	result := DotPathToHash(entry, target, "", testConfig())

	assert.Equal(t, catalog.Object{
		"ns": catalog.Object{"key": catalog.Leaf("keep")},
	}, result.Target)
	assert.False(t, result.Duplicate)
	assert.Nil(t, result.Conflict)
}

func TestDotPathToHashSuffix(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "key", Value: strPtr("v")}

	result := DotPathToHash(entry, catalog.Object{}, "_one", testConfig())

	assert.Equal(t, catalog.Object{
		"ns": catalog.Object{"key_one": catalog.Leaf("v")},
	}, result.Target)
}

func TestDotPathToHashKeyConflict(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "parent.child", Value: strPtr("v")}
	target := catalog.Object{"ns": catalog.Object{"parent": catalog.Leaf("leaf")}}

	result := DotPathToHash(entry, target, "", testConfig())

	assert.Equal(t, catalog.Object{
		"ns": catalog.Object{
			"parent": catalog.Object{"child": catalog.Leaf("v")},
		},
	}, result.Target)
	assert.Equal(t, KeyConflict{Path: "ns:parent.child", Segment: "parent"}, result.Conflict)
	// A conflicted materialization is not unique
	assert.True(t, result.Duplicate)
}

func TestDotPathToHashTrimsValue(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "key", Value: strPtr("  padded  ")}

	result := DotPathToHash(entry, catalog.Object{}, "", testConfig())

	assert.Equal(t, catalog.Leaf("padded"),
		result.Target["ns"].(catalog.Object)["key"])
}

func TestDotPathToHashTrailingSeparator(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "key.", Value: strPtr("v")}

	result := DotPathToHash(entry, catalog.Object{}, "", testConfig())

	assert.Equal(t, catalog.Object{
		"ns": catalog.Object{"key": catalog.Leaf("v")},
	}, result.Target)
}

func TestDotPathToHashDoesNotMutateInput(t *testing.T) {
	entry := scanner.Entry{Namespace: "ns", Key: "key", Value: strPtr("v")}
	target := catalog.Object{"ns": catalog.Object{"other": catalog.Leaf("x")}}

	_ = DotPathToHash(entry, target, "", testConfig())

	assert.Equal(t, catalog.Object{
		"ns": catalog.Object{"other": catalog.Leaf("x")},
	}, target)
}
