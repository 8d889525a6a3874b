package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"i18next-parser/core/catalog"
	"i18next-parser/core/config"
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

func TestMergeNoSource(t *testing.T) {
	existing := catalog.Object{
		"key1": catalog.Leaf("value1"),
		"key2": catalog.Leaf("value2"),
	}

	result := Merge(existing, nil, nil, "", false, testConfig())

	assert.Equal(t, existing, result.New)
	assert.Empty(t, result.Old)
	assert.Empty(t, result.Reset)
	assert.Zero(t, result.MergeCount)
	assert.Zero(t, result.OldCount)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := catalog.Object{"key1": catalog.Leaf("fresh")}
	source := catalog.Object{"key1": catalog.Leaf("translated")}

	Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Object{"key1": catalog.Leaf("fresh")}, existing)
	assert.Equal(t, catalog.Object{"key1": catalog.Leaf("translated")}, source)
}

func TestMergeOverwritesSharedKeys(t *testing.T) {
	existing := catalog.Object{
		"key1": catalog.Leaf(""),
		"key2": catalog.Leaf(""),
	}
	source := catalog.Object{"key1": catalog.Leaf("translated")}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Object{
		"key1": catalog.Leaf("translated"),
		"key2": catalog.Leaf(""),
	}, result.New)
	assert.Equal(t, 1, result.MergeCount)
	assert.Zero(t, result.OldCount)
}

func TestMergeNeverRegressesToEmpty(t *testing.T) {
	existing := catalog.Object{"key1": catalog.Leaf("a default")}
	source := catalog.Object{"key1": catalog.Leaf("")}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Leaf("a default"), result.New["key1"])
	assert.Equal(t, 1, result.MergeCount)
}

func TestMergeOrphansGoToOld(t *testing.T) {
	existing := catalog.Object{"kept": catalog.Leaf("")}
	source := catalog.Object{
		"kept": catalog.Leaf("translated"),
		"gone": catalog.Leaf("orphan"),
	}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Object{"kept": catalog.Leaf("translated")}, result.New)
	assert.Equal(t, catalog.Object{"gone": catalog.Leaf("orphan")}, result.Old)
	assert.Equal(t, 1, result.MergeCount)
	assert.Equal(t, 1, result.OldCount)
}

func TestMergeKeepRemovedRetainsOrphans(t *testing.T) {
	cfg := testConfig()
	cfg.KeepRemoved = true
	existing := catalog.Object{"kept": catalog.Leaf("")}
	source := catalog.Object{"gone": catalog.Leaf("orphan")}

	result := Merge(existing, source, nil, "", false, cfg)

	assert.Equal(t, catalog.Leaf("orphan"), result.New["gone"])
	assert.Empty(t, result.Old)
	assert.Equal(t, 1, result.OldCount)
}

func TestMergePullsBackPluralSiblings(t *testing.T) {
	// The extraction only regenerated _one and _other, but the catalog
	// carries a translator-added _few. The family keeps it.
	existing := catalog.Object{
		"apple_one":   catalog.Leaf(""),
		"apple_other": catalog.Leaf(""),
	}
	source := catalog.Object{
		"apple_one":   catalog.Leaf("jabłko"),
		"apple_few":   catalog.Leaf("jabłka"),
		"apple_other": catalog.Leaf("jabłek"),
	}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Object{
		"apple_one":   catalog.Leaf("jabłko"),
		"apple_few":   catalog.Leaf("jabłka"),
		"apple_other": catalog.Leaf("jabłek"),
	}, result.New)
	assert.Equal(t, 1, result.PullCount)
	assert.Equal(t, 2, result.MergeCount)
	assert.Zero(t, result.OldCount)
}

func TestMergePullsBackContextVariants(t *testing.T) {
	existing := catalog.Object{"friend": catalog.Leaf("")}
	source := catalog.Object{"friend_male": catalog.Leaf("ami")}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Leaf("ami"), result.New["friend_male"])
	assert.Equal(t, 1, result.PullCount)
	assert.Zero(t, result.OldCount)
}

func TestMergeNestedAggregatesCounters(t *testing.T) {
	existing := catalog.Object{
		"outer": catalog.Object{
			"kept": catalog.Leaf(""),
		},
	}
	source := catalog.Object{
		"outer": catalog.Object{
			"kept": catalog.Leaf("translated"),
			"gone": catalog.Leaf("orphan"),
		},
	}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Object{
		"outer": catalog.Object{"kept": catalog.Leaf("translated")},
	}, result.New)
	assert.Equal(t, catalog.Object{
		"outer": catalog.Object{"gone": catalog.Leaf("orphan")},
	}, result.Old)
	assert.Equal(t, 1, result.MergeCount)
	assert.Equal(t, 1, result.OldCount)
}

func TestMergeNestedKeysOnlyInBasePassThrough(t *testing.T) {
	existing := catalog.Object{
		"outer": catalog.Object{
			"fresh": catalog.Leaf("just added"),
			"kept":  catalog.Leaf(""),
		},
	}
	source := catalog.Object{
		"outer": catalog.Object{"kept": catalog.Leaf("translated")},
	}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Object{
		"outer": catalog.Object{
			"fresh": catalog.Leaf("just added"),
			"kept":  catalog.Leaf("translated"),
		},
	}, result.New)
	assert.Empty(t, result.Old)
	assert.Equal(t, 1, result.MergeCount)
}

func TestMergeResetAndFlag(t *testing.T) {
	existing := catalog.Object{"key1": catalog.Leaf("new")}
	source := catalog.Object{"key1": catalog.Leaf("stale")}

	result := Merge(existing, source, nil, "", true, testConfig())

	assert.Equal(t, catalog.Object{"key1": catalog.Leaf("new")}, result.New)
	assert.Equal(t, catalog.Object{"key1": catalog.Leaf("stale")}, result.Old)
	assert.Equal(t, catalog.Object{"key1": catalog.Flag(true)}, result.Reset)
	assert.Equal(t, 1, result.ResetCount)
	assert.Equal(t, 1, result.OldCount)
	assert.Zero(t, result.MergeCount)
}

func TestMergeResetAndFlagSkipsEqualAndPluralValues(t *testing.T) {
	existing := catalog.Object{
		"same":       catalog.Leaf("value"),
		"item_one":   catalog.Leaf("fresh"),
		"item_other": catalog.Leaf("fresh"),
	}
	source := catalog.Object{
		"same":       catalog.Leaf("value"),
		"item_one":   catalog.Leaf("stale"),
		"item_other": catalog.Leaf("stale"),
	}

	result := Merge(existing, source, nil, "", true, testConfig())

	assert.Zero(t, result.ResetCount)
	assert.Equal(t, 3, result.MergeCount)
	assert.Equal(t, catalog.Leaf("stale"), result.New["item_one"])
}

func TestMergeResetValuesForceReset(t *testing.T) {
	existing := catalog.Object{"key1": catalog.Leaf("value")}
	source := catalog.Object{"key1": catalog.Leaf("value")}
	resetValues := catalog.Object{"key1": catalog.Flag(true)}

	result := Merge(existing, source, resetValues, "", false, testConfig())

	assert.Equal(t, catalog.Object{"key1": catalog.Flag(true)}, result.Reset)
	assert.Equal(t, 1, result.ResetCount)
}

func TestMergeIncompatibleShapesGoToOld(t *testing.T) {
	existing := catalog.Object{"key1": catalog.Leaf("leaf")}
	source := catalog.Object{"key1": catalog.Object{"nested": catalog.Leaf("x")}}

	result := Merge(existing, source, nil, "", false, testConfig())

	assert.Equal(t, catalog.Leaf("leaf"), result.New["key1"])
	assert.Equal(t, catalog.Object{"nested": catalog.Leaf("x")}, result.Old["key1"])
	assert.Equal(t, 1, result.OldCount)
	assert.Zero(t, result.MergeCount)
}

func TestMergeIdempotent(t *testing.T) {
	existing := catalog.Object{
		"a": catalog.Leaf(""),
		"b": catalog.Object{"c": catalog.Leaf("")},
	}
	source := catalog.Object{
		"a": catalog.Leaf("one"),
		"b": catalog.Object{"c": catalog.Leaf("two")},
	}

	first := Merge(existing, source, nil, "", false, testConfig())
	second := Merge(existing, first.New, nil, "", false, testConfig())

	assert.Equal(t, first.New, second.New)
	assert.Empty(t, second.Old)
}

func TestTransferUnionTargetWins(t *testing.T) {
	source := catalog.Object{
		"shared": catalog.Leaf("from source"),
		"only":   catalog.Leaf("source only"),
		"deep":   catalog.Object{"a": catalog.Leaf("1")},
	}
	target := catalog.Object{
		"shared": catalog.Leaf("from target"),
		"deep":   catalog.Object{"b": catalog.Leaf("2")},
	}

	result := Transfer(source, target)

	assert.Equal(t, catalog.Object{
		"shared": catalog.Leaf("from target"),
		"only":   catalog.Leaf("source only"),
		"deep": catalog.Object{
			"a": catalog.Leaf("1"),
			"b": catalog.Leaf("2"),
		},
	}, result)
	// Inputs stay untouched.
	assert.Equal(t, catalog.Leaf("from source"), source["shared"])
	assert.Len(t, target["deep"], 1)
}
