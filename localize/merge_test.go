package localize

import (
	"reflect"
	"testing"
)

func TestMergeCurrentWinsOverFallback(t *testing.T) {
	e := New()
	structure := map[string]any{
		"title":     map[string]any{"$i18n": true},
		"alignment": "center",
	}

	merged := e.Merge(structure,
		map[string]any{"title": "Ahoj"},
		map[string]any{"title": "Hello"},
	)
	assertEqual(t, merged, map[string]any{"title": "Ahoj", "alignment": "center"})
}

func TestMergeFallbackFillsGaps(t *testing.T) {
	e := New()
	structure := map[string]any{
		"title":     map[string]any{"$i18n": true},
		"alignment": "center",
	}

	merged := e.Merge(structure, map[string]any{}, map[string]any{"title": "Hello"})
	assertEqual(t, merged, map[string]any{"title": "Hello", "alignment": "center"})
}

func TestMergeMissingEverywhereOmitsField(t *testing.T) {
	e := New()
	structure := map[string]any{
		"title":     map[string]any{"$i18n": true},
		"alignment": "center",
	}

	merged := e.Merge(structure, nil, nil)
	assertEqual(t, merged, map[string]any{"alignment": "center"})
}

func TestMergeFallbackPrecedenceEquivalence(t *testing.T) {
	e := New()
	structure := map[string]any{
		"title":    map[string]any{"$i18n": true},
		"subtitle": map[string]any{"$i18n": true},
	}
	full := map[string]any{"title": "Hello", "subtitle": "World"}

	asCurrent := e.Merge(structure, full, map[string]any{})
	asFallback := e.Merge(structure, map[string]any{}, full)
	if !reflect.DeepEqual(asCurrent, asFallback) {
		t.Fatalf("full fallback must equal full current: %#v vs %#v", asCurrent, asFallback)
	}
}

func TestMergeNestedObjectsAndArrays(t *testing.T) {
	e := New()
	structure := map[string]any{
		"hero": map[string]any{
			"title": map[string]any{"$i18n": true},
			"cta": map[string]any{
				"label": map[string]any{"$i18n": true},
				"href":  "/buy",
			},
		},
		"items": []any{
			map[string]any{"label": map[string]any{"$i18n": true}, "slot": "a"},
			map[string]any{"label": map[string]any{"$i18n": true}, "slot": "b"},
		},
	}
	current := map[string]any{
		"hero":  map[string]any{"title": "Hola", "cta": map[string]any{"label": "Compra"}},
		"items": []any{map[string]any{"label": "Uno"}},
	}
	fallback := map[string]any{
		"hero":  map[string]any{"title": "Hi", "cta": map[string]any{"label": "Buy"}},
		"items": []any{map[string]any{"label": "One"}, map[string]any{"label": "Two"}},
	}

	merged := e.Merge(structure, current, fallback)
	assertEqual(t, merged, map[string]any{
		"hero": map[string]any{
			"title": "Hola",
			"cta":   map[string]any{"label": "Compra", "href": "/buy"},
		},
		"items": []any{
			map[string]any{"label": "Uno", "slot": "a"},
			map[string]any{"label": "Two", "slot": "b"},
		},
	})
}

func TestMergeCompositePassesTreeThrough(t *testing.T) {
	e := New()
	structure := map[string]any{
		"_tree": []any{
			map[string]any{"id": "a", "type": "hero", "children": []any{}},
		},
		"_values": map[string]any{
			"a": map[string]any{"title": map[string]any{"$i18n": true}, "icon": "star"},
		},
	}

	merged := e.Merge(structure,
		map[string]any{"_values": map[string]any{"a": map[string]any{"title": "Hola"}}},
		map[string]any{"_values": map[string]any{"a": map[string]any{"title": "Hi"}}},
	)
	assertEqual(t, merged, map[string]any{
		"_tree": []any{
			map[string]any{"id": "a", "type": "hero", "children": []any{}},
		},
		"_values": map[string]any{
			"a": map[string]any{"title": "Hola", "icon": "star"},
		},
	})
}

func TestMergeCompositeNodeOnlyInFallback(t *testing.T) {
	e := New()
	structure := map[string]any{
		"_tree": []any{
			map[string]any{"id": "a", "type": "hero", "children": []any{}},
			map[string]any{"id": "b", "type": "hero", "children": []any{}},
		},
		"_values": map[string]any{
			"a": map[string]any{"title": map[string]any{"$i18n": true}},
			"b": map[string]any{"title": map[string]any{"$i18n": true}},
		},
	}

	merged := e.Merge(structure,
		map[string]any{"_values": map[string]any{"a": map[string]any{"title": "Aktuell"}}},
		map[string]any{"_values": map[string]any{"b": map[string]any{"title": "Fallback"}}},
	)
	values := merged.(map[string]any)["_values"].(map[string]any)
	assertEqual(t, values["a"], map[string]any{"title": "Aktuell"})
	assertEqual(t, values["b"], map[string]any{"title": "Fallback"})
}

func TestMergeIdentityStabilityUnderReorder(t *testing.T) {
	e := New()
	structure := func(order ...string) map[string]any {
		tree := make([]any, 0, len(order))
		for _, id := range order {
			tree = append(tree, map[string]any{"id": id, "type": "hero", "children": []any{}})
		}
		return map[string]any{
			"_tree": tree,
			"_values": map[string]any{
				"a": map[string]any{"title": map[string]any{"$i18n": true}},
				"b": map[string]any{"title": map[string]any{"$i18n": true}},
			},
		}
	}
	values := map[string]any{"_values": map[string]any{
		"a": map[string]any{"title": "Alpha"},
		"b": map[string]any{"title": "Beta"},
	}}

	first := e.Merge(structure("a", "b"), values, nil).(map[string]any)["_values"]
	second := e.Merge(structure("b", "a"), values, nil).(map[string]any)["_values"]
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("per-id content must not depend on tree order: %#v vs %#v", first, second)
	}
}

func TestMergeIdentityKeyedArrayByID(t *testing.T) {
	e := New()
	structure := []any{
		map[string]any{"id": "y", "label": map[string]any{"$i18n": true}},
		map[string]any{"id": "x", "label": map[string]any{"$i18n": true}},
	}
	// Current locale arrays are reordered relative to the structure.
	current := []any{
		map[string]any{"id": "x", "label": "Equis"},
		map[string]any{"id": "y", "label": "Ye"},
	}

	merged := e.Merge(structure, current, nil)
	assertEqual(t, merged, []any{
		map[string]any{"id": "y", "label": "Ye"},
		map[string]any{"id": "x", "label": "Equis"},
	})
}

func TestMergeMalformedValuesDegradeToFallback(t *testing.T) {
	e := New()
	structure := map[string]any{
		"title": map[string]any{"$i18n": true},
		"meta":  map[string]any{"description": map[string]any{"$i18n": true}},
	}
	fallback := map[string]any{
		"title": "Hello",
		"meta":  map[string]any{"description": "Desc"},
	}

	// Current tree has the wrong shape at both paths.
	merged := e.Merge(structure, map[string]any{"meta": "not an object"}, fallback)
	assertEqual(t, merged, map[string]any{
		"title": "Hello",
		"meta":  map[string]any{"description": "Desc"},
	})
}

func TestMergeNonLocalizedPassthrough(t *testing.T) {
	e := New()
	structure := map[string]any{
		"alignment": "center",
		"settings":  map[string]any{"columns": float64(2)},
		"flags":     []any{true, false},
	}

	merged := e.Merge(structure, map[string]any{"alignment": "ignored"}, nil)
	assertEqual(t, merged, structure)
}

func TestSplitMergeRoundTrip(t *testing.T) {
	e := New()
	data := map[string]any{
		"title":     "Hello",
		"alignment": "center",
		"blocks": map[string]any{
			"_tree": []any{
				map[string]any{"id": "a", "type": "hero", "children": []any{}},
			},
			"_values": map[string]any{
				"a": map[string]any{"title": "Hi", "icon": "star"},
			},
		},
	}
	schema := map[string]any{
		"title": true,
		"blocks": map[string]any{
			"_blocks": map[string]any{"hero": map[string]any{"title": true}},
		},
	}

	structure, values := mustSplit(t, e, data, schema)
	merged := e.Merge(structure, values, nil)
	assertEqual(t, merged, data)
}

func TestSplitMergeRoundTripIdentityArray(t *testing.T) {
	e := New()
	data := []any{
		map[string]any{"id": "x", "label": map[string]any{"$i18n": "Equis"}, "href": "/x"},
		map[string]any{"id": "y", "label": map[string]any{"$i18n": "Ye"}, "href": "/y"},
	}
	schema := map[string]any{"_item": map[string]any{"label": true}}

	structure, values := mustSplit(t, e, data, schema)
	merged := e.Merge(structure, values, nil)

	assertEqual(t, merged, []any{
		map[string]any{"id": "x", "label": "Equis", "href": "/x"},
		map[string]any{"id": "y", "label": "Ye", "href": "/y"},
	})
}

func TestSplitMergeIdentityArrayReorderedValues(t *testing.T) {
	e := New()
	data := []any{
		map[string]any{"id": "x", "label": map[string]any{"$i18n": "Equis"}},
		map[string]any{"id": "y", "label": map[string]any{"$i18n": "Ye"}},
	}
	schema := map[string]any{"_item": map[string]any{"label": true}}

	structure, values := mustSplit(t, e, data, schema)

	// Reverse the per-locale values array; identity must keep each label
	// attached to its item regardless of position.
	arr := values.([]any)
	reversed := []any{arr[1], arr[0]}

	merged := e.Merge(structure, reversed, nil)
	assertEqual(t, merged, []any{
		map[string]any{"id": "x", "label": "Equis"},
		map[string]any{"id": "y", "label": "Ye"},
	})
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	e := New()
	structure := map[string]any{"title": map[string]any{"$i18n": true}}
	current := map[string]any{"title": map[string]any{"rich": "value"}}

	merged := e.Merge(structure, current, nil)
	merged.(map[string]any)["title"].(map[string]any)["rich"] = "mutated"
	assertEqual(t, current["title"], map[string]any{"rich": "value"})
}
