package localize

import (
	"reflect"
	"testing"
)

func TestArrayToMapRoundTrip(t *testing.T) {
	e := New()
	items := []any{
		map[string]any{"id": "a", "label": "One"},
		map[string]any{"id": "b", "label": "Two"},
		map[string]any{"id": "c", "label": "Three"},
	}

	order, byID := e.ArrayToMap(items)
	restored := e.MapToArray(byID, order)
	if !reflect.DeepEqual(restored, items) {
		t.Fatalf("round trip mismatch: %#v", restored)
	}
}

func TestArrayToMapNumericIDs(t *testing.T) {
	e := New()
	items := []any{
		map[string]any{"id": float64(1), "label": "One"},
		map[string]any{"id": float64(2), "label": "Two"},
	}

	order, byID := e.ArrayToMap(items)
	assertEqual(t, order, []string{"1", "2"})
	assertEqual(t, byID["2"], map[string]any{"id": float64(2), "label": "Two"})
}

func TestArrayToMapDuplicateIDsLastWriteWins(t *testing.T) {
	e := New()
	items := []any{
		map[string]any{"id": "a", "label": "First"},
		map[string]any{"id": "b", "label": "Middle"},
		map[string]any{"id": "a", "label": "Last"},
	}

	order, byID := e.ArrayToMap(items)
	assertEqual(t, order, []string{"a", "b"})
	assertEqual(t, byID["a"], map[string]any{"id": "a", "label": "Last"})
}

func TestArrayToMapSkipsUnidentifiableItems(t *testing.T) {
	e := New()
	items := []any{
		map[string]any{"id": "a"},
		"scalar",
		map[string]any{"label": "no id"},
		nil,
	}

	order, byID := e.ArrayToMap(items)
	assertEqual(t, order, []string{"a"})
	if len(byID) != 1 {
		t.Fatalf("expected one entry, got %d", len(byID))
	}
}

func TestMapToArraySkipsMissingIDs(t *testing.T) {
	e := New()
	out := e.MapToArray(map[string]any{"a": map[string]any{"id": "a"}}, []string{"a", "gone"})
	assertEqual(t, out, []any{map[string]any{"id": "a"}})
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("current", "fallback"); got != "current" {
		t.Fatalf("expected current to win, got %v", got)
	}
	if got := Coalesce(nil, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := Coalesce(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := CoalesceString("", "Hello"); got != "Hello" {
		t.Fatalf("expected fallback string, got %q", got)
	}
	if got := CoalesceString("Ahoj", "Hello"); got != "Ahoj" {
		t.Fatalf("expected current string, got %q", got)
	}
}
