package localize

// kind is the closed set of node shapes the engine distinguishes. Every node
// is classified exactly once per visit; unrecognised shapes fall through to
// kindScalar and are copied verbatim.
type kind int

const (
	kindScalar kind = iota
	kindMarker
	kindWrapper
	kindComposite
	kindIdentityArray
	kindArray
	kindObject
)

func (e *Engine) classify(value any) kind {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 1 {
			if inner, ok := v[e.markerKey]; ok {
				if b, isBool := inner.(bool); isBool && b {
					return kindMarker
				}
				return kindWrapper
			}
		}
		if e.isComposite(v) {
			return kindComposite
		}
		return kindObject
	case []any:
		if e.isIdentityKeyed(v) {
			return kindIdentityArray
		}
		return kindArray
	default:
		return kindScalar
	}
}

// IsMarker reports whether value is the boolean localization marker: a plain
// object whose single key is the marker key with value true.
func (e *Engine) IsMarker(value any) bool {
	return e.classify(value) == kindMarker
}

// IsValueWrapper reports whether value is the value-carrying marker form: a
// plain object whose single key is the marker key with any value other than
// true.
func (e *Engine) IsValueWrapper(value any) bool {
	return e.classify(value) == kindWrapper
}

// IsIdentityComposite reports whether value is the tree+values composite: a
// plain object with exactly the tree and values keys, where the tree is an
// array and the values member is an object keyed by node id.
func (e *Engine) IsIdentityComposite(value any) bool {
	obj, ok := value.(map[string]any)
	return ok && e.isComposite(obj)
}

// IsIdentityKeyedArray reports whether value is a non-empty array whose items
// are all plain objects carrying the identity key.
func (e *Engine) IsIdentityKeyedArray(value any) bool {
	arr, ok := value.([]any)
	return ok && e.isIdentityKeyed(arr)
}

func (e *Engine) isComposite(obj map[string]any) bool {
	if len(obj) != 2 {
		return false
	}
	tree, ok := obj[e.treeKey]
	if !ok {
		return false
	}
	values, ok := obj[e.valuesKey]
	if !ok {
		return false
	}
	if _, ok := tree.([]any); !ok {
		return false
	}
	_, ok = values.(map[string]any)
	return ok
}

func (e *Engine) isIdentityKeyed(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := identityString(obj[e.idKey]); !ok {
			return false
		}
	}
	return true
}

// clone deep-copies JSON-like values so engine outputs never alias caller
// owned data. Scalars are returned as-is.
func clone(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = clone(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = clone(item)
		}
		return out
	default:
		return v
	}
}
