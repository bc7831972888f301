package localize

// Merge reconstructs a locale-specific document by walking structure and
// replacing every marker with the value at the corresponding path in current,
// falling back to fallback for gaps. Current always wins over fallback;
// fallback only fills gaps. A marker with no value in either locale resolves
// to absent: the key is omitted from objects, nil elsewhere.
//
// Values trees that are malformed at a path degrade to "absent" so a corrupt
// locale override falls back instead of breaking the read path. The walk is
// a single pass over structure; current and fallback are only indexed into.
func (e *Engine) Merge(structure, current, fallback any) any {
	return e.merge(structure, current, fallback)
}

func (e *Engine) merge(structure, current, fallback any) any {
	switch e.classify(structure) {
	case kindMarker:
		if current != nil {
			return clone(current)
		}
		if fallback != nil {
			return clone(fallback)
		}
		return nil
	case kindComposite:
		return e.mergeComposite(structure.(map[string]any), current, fallback)
	case kindIdentityArray:
		return e.mergeIdentityArray(structure.([]any), current, fallback)
	case kindArray:
		return e.mergeArray(structure.([]any), current, fallback)
	case kindObject:
		return e.mergeObject(structure.(map[string]any), current, fallback)
	default:
		return clone(structure)
	}
}

func (e *Engine) mergeObject(structure map[string]any, current, fallback any) any {
	cur, _ := current.(map[string]any)
	fb, _ := fallback.(map[string]any)
	out := make(map[string]any, len(structure))
	for key, child := range structure {
		merged := e.merge(child, cur[key], fb[key])
		if merged == nil && e.IsMarker(child) {
			// Marker with no value in any locale: the field stays absent.
			continue
		}
		out[key] = merged
	}
	return out
}

// mergeArray merges element-by-element by index. Per-locale arrays shorter
// than the structure contribute nothing for the missing tail.
func (e *Engine) mergeArray(structure []any, current, fallback any) any {
	cur, _ := current.([]any)
	fb, _ := fallback.([]any)
	out := make([]any, len(structure))
	for i, child := range structure {
		out[i] = e.merge(child, indexOrNil(cur, i), indexOrNil(fb, i))
	}
	return out
}

// mergeIdentityArray merges items by id rather than position: per-locale
// arrays reordered by an editor still resolve each item's values through its
// identity. Output order follows the structure.
func (e *Engine) mergeIdentityArray(structure []any, current, fallback any) any {
	curArr, _ := current.([]any)
	fbArr, _ := fallback.([]any)
	_, curByID := e.ArrayToMap(curArr)
	_, fbByID := e.ArrayToMap(fbArr)

	out := make([]any, len(structure))
	for i, child := range structure {
		obj, ok := child.(map[string]any)
		if !ok {
			out[i] = e.merge(child, indexOrNil(curArr, i), indexOrNil(fbArr, i))
			continue
		}
		id, ok := identityString(obj[e.idKey])
		if !ok {
			out[i] = e.merge(child, indexOrNil(curArr, i), indexOrNil(fbArr, i))
			continue
		}
		out[i] = e.merge(child, curByID[id], fbByID[id])
	}
	return out
}

// mergeComposite passes the tree through unchanged and merges every values
// entry independently by node id. A node translated only in the fallback
// locale still renders with fallback content.
func (e *Engine) mergeComposite(structure map[string]any, current, fallback any) any {
	tree, _ := structure[e.treeKey].([]any)
	entries, _ := structure[e.valuesKey].(map[string]any)
	curEntries := e.compositeEntries(current)
	fbEntries := e.compositeEntries(fallback)

	merged := make(map[string]any, len(entries))
	for id, child := range entries {
		merged[id] = e.merge(child, curEntries[id], fbEntries[id])
	}
	return map[string]any{
		e.treeKey:   clone(tree),
		e.valuesKey: merged,
	}
}

// compositeEntries digs the per-node map out of a locale's values tree. Split
// emits composites as {valuesKey: {id: ...}}; a bare id map is accepted too
// so hand-written values trees degrade gracefully.
func (e *Engine) compositeEntries(values any) map[string]any {
	obj, ok := values.(map[string]any)
	if !ok {
		return nil
	}
	if inner, ok := obj[e.valuesKey].(map[string]any); ok {
		return inner
	}
	return obj
}

func indexOrNil(arr []any, i int) any {
	if i < 0 || i >= len(arr) {
		return nil
	}
	return arr[i]
}
