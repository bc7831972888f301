package localize

import "strconv"

// ArrayToMap converts an identity-keyed array into an id-ordered lookup so
// merge and split can operate by identity rather than position. Items that
// are not objects or carry no usable id are skipped. Duplicate ids resolve
// last-write-wins for content while keeping the first occurrence's position
// in the returned order.
func (e *Engine) ArrayToMap(items []any) ([]string, map[string]any) {
	order := make([]string, 0, len(items))
	byID := make(map[string]any, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := identityString(obj[e.idKey])
		if !ok {
			continue
		}
		if _, seen := byID[id]; !seen {
			order = append(order, id)
		}
		byID[id] = obj
	}
	return order, byID
}

// MapToArray restores an identity-keyed array from a lookup map using the
// supplied id order. Ids missing from the map are skipped, so
// MapToArray(ArrayToMap(xs)) round-trips any array of objects with unique
// ids order- and content-equal.
func (e *Engine) MapToArray(byID map[string]any, order []string) []any {
	out := make([]any, 0, len(order))
	for _, id := range order {
		item, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// identityString normalises the id forms JSON decoding produces. Numeric ids
// arrive as float64.
func identityString(value any) (string, bool) {
	switch id := value.(type) {
	case string:
		if id == "" {
			return "", false
		}
		return id, true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case int:
		return strconv.Itoa(id), true
	default:
		return "", false
	}
}
