package localize

import "errors"

// ErrSchemaRequired is returned by Split when no schema is supplied. Callers
// that want wrapper auto-detection should use SplitAuto instead.
var ErrSchemaRequired = errors.New("localize: schema is required")

// Split separates data into a language-neutral structure and a tree of
// localized leaf values according to the supplied localization schema. The
// structure mirrors data's shape with every localized leaf replaced by the
// boolean marker; the values tree holds exactly those leaves at matching
// paths. A nil values result means no leaf was localized and there is
// nothing to persist for this call; it never means "erase prior values".
func (e *Engine) Split(data, schema any) (structure, values any, err error) {
	if schema == nil {
		return nil, nil, ErrSchemaRequired
	}
	structure, values = e.split(data, schema, false)
	return structure, values, nil
}

// SplitAuto separates data without a schema: any value-carrying marker
// wrapper is treated as a localized leaf regardless of position, everything
// else is structural.
func (e *Engine) SplitAuto(data any) (structure, values any) {
	return e.split(data, nil, true)
}

func (e *Engine) split(data, schema any, auto bool) (any, any) {
	if data == nil {
		return nil, nil
	}
	if auto {
		return e.splitAuto(data)
	}

	switch s := schema.(type) {
	case bool:
		if !s {
			return clone(data), nil
		}
		return e.splitLocalizedLeaf(data)
	case map[string]any:
		if blocks, ok := blockSchemas(s); ok {
			if obj, isObj := data.(map[string]any); isObj && e.isComposite(obj) {
				return e.splitComposite(obj, blocks, false)
			}
			return clone(data), nil
		}
		if item, ok := itemSchema(s); ok {
			if arr, isArr := data.([]any); isArr {
				return e.splitArray(arr, item, false)
			}
			return clone(data), nil
		}
		if obj, isObj := data.(map[string]any); isObj {
			return e.splitObject(obj, s, false)
		}
		return clone(data), nil
	default:
		return clone(data), nil
	}
}

func (e *Engine) splitAuto(data any) (any, any) {
	switch e.classify(data) {
	case kindWrapper:
		return e.Marker(), clone(data.(map[string]any)[e.markerKey])
	case kindComposite:
		return e.splitComposite(data.(map[string]any), nil, true)
	case kindArray, kindIdentityArray:
		return e.splitArray(data.([]any), nil, true)
	case kindObject:
		return e.splitObject(data.(map[string]any), nil, true)
	default:
		// Scalars and bare boolean markers pass through untouched.
		return clone(data), nil
	}
}

// splitLocalizedLeaf handles a subtree the schema declares fully localized.
// A single-key marker object is unwrapped (the legacy inline submission
// form); any other value is itself the localized content.
func (e *Engine) splitLocalizedLeaf(data any) (any, any) {
	if obj, ok := data.(map[string]any); ok && len(obj) == 1 {
		if inner, ok := obj[e.markerKey]; ok {
			return e.Marker(), clone(inner)
		}
	}
	return e.Marker(), clone(data)
}

func (e *Engine) splitObject(obj map[string]any, schema map[string]any, auto bool) (any, any) {
	structure := make(map[string]any, len(obj))
	values := make(map[string]any)
	for key, val := range obj {
		var childSchema any
		if !auto {
			cs, covered := schema[key]
			if !covered {
				// Schema is the allow-list: uncovered keys stay structural.
				structure[key] = clone(val)
				continue
			}
			childSchema = cs
		}
		st, leaf := e.split(val, childSchema, auto)
		structure[key] = st
		if leaf != nil {
			values[key] = leaf
		}
	}
	if len(values) == 0 {
		return structure, nil
	}
	return structure, values
}

// splitArray recurses per element preserving index. The values result keeps
// the same length with nil holes so downstream merges stay path-aligned; it
// collapses to nil when no element produced a localized leaf.
func (e *Engine) splitArray(arr []any, item any, auto bool) (any, any) {
	structure := make([]any, len(arr))
	values := make([]any, len(arr))
	localized := false
	for i, element := range arr {
		st, leaf := e.split(element, item, auto)
		structure[i] = st
		values[i] = e.tagIdentity(element, leaf)
		if leaf != nil {
			localized = true
		}
	}
	if !localized {
		return structure, nil
	}
	return structure, values
}

// tagIdentity copies an identifiable element's id into its emitted values
// object. Per-locale values items stay resolvable by identity, so a reorder
// in one locale's array cannot desynchronize content from its item.
func (e *Engine) tagIdentity(element, leaf any) any {
	leafObj, ok := leaf.(map[string]any)
	if !ok {
		return leaf
	}
	obj, ok := element.(map[string]any)
	if !ok {
		return leaf
	}
	if _, exists := leafObj[e.idKey]; exists {
		return leaf
	}
	id, ok := obj[e.idKey]
	if !ok {
		return leaf
	}
	if _, usable := identityString(id); usable {
		leafObj[e.idKey] = id
	}
	return leaf
}

// splitComposite handles the tree+values shape. The tree is copied into the
// structure unchanged; each values entry is split with the schema of its
// node's type. Entries whose node is missing from the tree, or whose type
// has no block schema, stay structural: never dropped, never silently
// localized.
func (e *Engine) splitComposite(obj map[string]any, blocks map[string]any, auto bool) (any, any) {
	tree, _ := obj[e.treeKey].([]any)
	entries, _ := obj[e.valuesKey].(map[string]any)

	structValues := make(map[string]any, len(entries))
	leafValues := make(map[string]any)
	for id, entry := range entries {
		var entrySchema any
		if !auto {
			nodeType, found := e.resolveNodeType(tree, id)
			if !found {
				structValues[id] = clone(entry)
				continue
			}
			schema, ok := blocks[nodeType]
			if !ok {
				structValues[id] = clone(entry)
				continue
			}
			entrySchema = schema
		}
		st, leaf := e.split(entry, entrySchema, auto)
		structValues[id] = st
		if leaf != nil {
			leafValues[id] = leaf
		}
	}

	structure := map[string]any{
		e.treeKey:   clone(tree),
		e.valuesKey: structValues,
	}
	if len(leafValues) == 0 {
		return structure, nil
	}
	return structure, map[string]any{e.valuesKey: leafValues}
}
