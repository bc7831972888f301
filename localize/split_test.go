package localize

import (
	"reflect"
	"testing"
)

func mustSplit(t *testing.T, e *Engine, data, schema any) (any, any) {
	t.Helper()
	structure, values, err := e.Split(data, schema)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	return structure, values
}

func assertEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestSplitRequiresSchema(t *testing.T) {
	e := New()
	if _, _, err := e.Split(map[string]any{}, nil); err != ErrSchemaRequired {
		t.Fatalf("expected ErrSchemaRequired, got %v", err)
	}
}

func TestSplitFlatObject(t *testing.T) {
	e := New()
	data := map[string]any{
		"title":     map[string]any{"$i18n": "Hello"},
		"alignment": "center",
	}
	schema := map[string]any{"title": true, "alignment": false}

	structure, values := mustSplit(t, e, data, schema)

	assertEqual(t, structure, map[string]any{
		"title":     map[string]any{"$i18n": true},
		"alignment": "center",
	})
	assertEqual(t, values, map[string]any{"title": "Hello"})
}

func TestSplitPlainScalarUnderTrueSchema(t *testing.T) {
	e := New()
	structure, values := mustSplit(t, e,
		map[string]any{"title": "Hello"},
		map[string]any{"title": true},
	)
	assertEqual(t, structure, map[string]any{"title": map[string]any{"$i18n": true}})
	assertEqual(t, values, map[string]any{"title": "Hello"})
}

func TestSplitUncoveredKeysAreStructural(t *testing.T) {
	e := New()
	data := map[string]any{
		"title": "Hello",
		"extra": map[string]any{"$i18n": "not split"},
	}
	structure, values := mustSplit(t, e, data, map[string]any{"title": true})

	assertEqual(t, structure, map[string]any{
		"title": map[string]any{"$i18n": true},
		"extra": map[string]any{"$i18n": "not split"},
	})
	assertEqual(t, values, map[string]any{"title": "Hello"})
}

func TestSplitNilValuesWhenNothingLocalized(t *testing.T) {
	e := New()
	data := map[string]any{"alignment": "center"}

	structure, values := mustSplit(t, e, data, map[string]any{"alignment": false})
	assertEqual(t, structure, data)
	if values != nil {
		t.Fatalf("expected nil values, got %#v", values)
	}
}

func TestSplitNullPassesThrough(t *testing.T) {
	e := New()
	structure, values := mustSplit(t, e,
		map[string]any{"title": nil},
		map[string]any{"title": true},
	)
	assertEqual(t, structure, map[string]any{"title": nil})
	if values != nil {
		t.Fatalf("expected nil values for null leaf, got %#v", values)
	}
}

func TestSplitArrayWithItemSchema(t *testing.T) {
	e := New()
	data := []any{
		map[string]any{"label": "One", "href": "/one"},
		map[string]any{"label": "Two", "href": "/two"},
	}
	schema := map[string]any{"_item": map[string]any{"label": true}}

	structure, values := mustSplit(t, e, data, schema)

	assertEqual(t, structure, []any{
		map[string]any{"label": map[string]any{"$i18n": true}, "href": "/one"},
		map[string]any{"label": map[string]any{"$i18n": true}, "href": "/two"},
	})
	assertEqual(t, values, []any{
		map[string]any{"label": "One"},
		map[string]any{"label": "Two"},
	})
}

func TestSplitIdentityArrayValuesCarryIDs(t *testing.T) {
	e := New()
	data := []any{
		map[string]any{"id": "x", "label": map[string]any{"$i18n": "Equis"}},
		map[string]any{"id": "y", "label": map[string]any{"$i18n": "Ye"}},
	}
	schema := map[string]any{"_item": map[string]any{"label": true}}

	structure, values := mustSplit(t, e, data, schema)

	assertEqual(t, structure, []any{
		map[string]any{"id": "x", "label": map[string]any{"$i18n": true}},
		map[string]any{"id": "y", "label": map[string]any{"$i18n": true}},
	})
	// Values items keep their item's id so merges resolve them by identity.
	assertEqual(t, values, []any{
		map[string]any{"id": "x", "label": "Equis"},
		map[string]any{"id": "y", "label": "Ye"},
	})
}

func TestSplitArrayKeepsIndexHoles(t *testing.T) {
	e := New()
	data := []any{
		map[string]any{"label": "One"},
		map[string]any{"href": "/two"},
	}
	schema := map[string]any{"_item": map[string]any{"label": true}}

	_, values := mustSplit(t, e, data, schema)

	assertEqual(t, values, []any{map[string]any{"label": "One"}, nil})
}

func TestSplitArraySchemaShapeMismatch(t *testing.T) {
	e := New()
	data := map[string]any{"unexpected": "object"}
	schema := map[string]any{"_item": map[string]any{"label": true}}

	structure, values := mustSplit(t, e, data, schema)
	assertEqual(t, structure, data)
	if values != nil {
		t.Fatalf("expected structural copy on shape mismatch, got values %#v", values)
	}
}

func TestSplitIdentityComposite(t *testing.T) {
	e := New()
	data := map[string]any{
		"_tree": []any{
			map[string]any{"id": "a", "type": "hero", "children": []any{}},
		},
		"_values": map[string]any{
			"a": map[string]any{"title": map[string]any{"$i18n": "Hi"}, "icon": "star"},
		},
	}
	schema := map[string]any{
		"_blocks": map[string]any{"hero": map[string]any{"title": true}},
	}

	structure, values := mustSplit(t, e, data, schema)

	assertEqual(t, structure, map[string]any{
		"_tree": []any{
			map[string]any{"id": "a", "type": "hero", "children": []any{}},
		},
		"_values": map[string]any{
			"a": map[string]any{"title": map[string]any{"$i18n": true}, "icon": "star"},
		},
	})
	assertEqual(t, values, map[string]any{
		"_values": map[string]any{"a": map[string]any{"title": "Hi"}},
	})
}

func TestSplitCompositeNestedChildrenResolveType(t *testing.T) {
	e := New()
	data := map[string]any{
		"_tree": []any{
			map[string]any{"id": "root", "type": "section", "children": []any{
				map[string]any{"id": "b", "type": "hero", "children": []any{}},
			}},
		},
		"_values": map[string]any{
			"b": map[string]any{"title": "Nested"},
		},
	}
	schema := map[string]any{
		"_blocks": map[string]any{"hero": map[string]any{"title": true}},
	}

	_, values := mustSplit(t, e, data, schema)
	assertEqual(t, values, map[string]any{
		"_values": map[string]any{"b": map[string]any{"title": "Nested"}},
	})
}

func TestSplitCompositeUnknownNodeStaysStructural(t *testing.T) {
	e := New()
	data := map[string]any{
		"_tree": []any{
			map[string]any{"id": "a", "type": "hero", "children": []any{}},
		},
		"_values": map[string]any{
			"a":      map[string]any{"title": "Known"},
			"orphan": map[string]any{"title": "No tree node"},
			"plain":  map[string]any{"body": "Type without schema"},
		},
	}
	schema := map[string]any{
		"_blocks": map[string]any{"hero": map[string]any{"title": true}},
	}

	structure, values := mustSplit(t, e, data, schema)

	st := structure.(map[string]any)["_values"].(map[string]any)
	assertEqual(t, st["orphan"], map[string]any{"title": "No tree node"})
	assertEqual(t, st["plain"], map[string]any{"body": "Type without schema"})
	assertEqual(t, values, map[string]any{
		"_values": map[string]any{"a": map[string]any{"title": "Known"}},
	})
}

func TestSplitAutoDetectsWrappers(t *testing.T) {
	e := New()
	data := map[string]any{
		"title": map[string]any{"$i18n": "Hello"},
		"meta": map[string]any{
			"description": map[string]any{"$i18n": "Desc"},
			"robots":      "index",
		},
		"tags": []any{map[string]any{"$i18n": "tag-one"}, "plain"},
	}

	structure, values := e.SplitAuto(data)

	assertEqual(t, structure, map[string]any{
		"title": map[string]any{"$i18n": true},
		"meta": map[string]any{
			"description": map[string]any{"$i18n": true},
			"robots":      "index",
		},
		"tags": []any{map[string]any{"$i18n": true}, "plain"},
	})
	assertEqual(t, values, map[string]any{
		"title": "Hello",
		"meta":  map[string]any{"description": "Desc"},
		"tags":  []any{"tag-one", nil},
	})
}

func TestSplitAutoLeavesPlainDataUntouched(t *testing.T) {
	e := New()
	data := map[string]any{"title": "Hello", "count": float64(3)}

	structure, values := e.SplitAuto(data)
	assertEqual(t, structure, data)
	if values != nil {
		t.Fatalf("expected nil values, got %#v", values)
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	e := New()
	data := map[string]any{
		"title": map[string]any{"$i18n": "Hello"},
		"list":  []any{map[string]any{"label": "One"}},
	}
	schema := map[string]any{
		"title": true,
		"list":  map[string]any{"_item": map[string]any{"label": true}},
	}

	structure, _ := mustSplit(t, e, data, schema)

	structure.(map[string]any)["title"].(map[string]any)["$i18n"] = "mutated"
	assertEqual(t, data["title"], map[string]any{"$i18n": "Hello"})
}
