// Package localize implements the structural merge/split engine behind
// localized record fields. A client-submitted document is split into a
// language-neutral structure (localized leaves replaced by a marker) and a
// per-locale values tree; on read the structure is merged back with the
// requested locale's values, falling back to a default locale for gaps.
//
// Every operation is pure: inputs are never mutated, outputs are freshly
// allocated, and the engine is safe for concurrent use.
package localize

// Default keys recognised by an Engine. They can be swapped per instance via
// the corresponding options; no package-level state is consulted at runtime.
const (
	DefaultMarkerKey = "$i18n"
	DefaultIDKey     = "id"
	DefaultTypeKey   = "type"
	DefaultTreeKey   = "_tree"
	DefaultValuesKey = "_values"
	// DefaultOrderKey is reserved for array-level order markers emitted by
	// editors; identity-keyed merges resolve order from the structure, so the
	// engine itself never reads it.
	DefaultOrderKey = "_order"

	schemaItemKey     = "_item"
	schemaBlocksKey   = "_blocks"
	schemaChildrenKey = "children"
)

// Engine carries the sentinel keys used to recognise localization markers and
// identity-keyed shapes. The zero value is not usable; construct with New.
type Engine struct {
	markerKey string
	idKey     string
	typeKey   string
	treeKey   string
	valuesKey string
}

// Option configures an Engine.
type Option func(*Engine)

// WithMarkerKey overrides the localization marker key.
func WithMarkerKey(key string) Option {
	return func(e *Engine) {
		if key != "" {
			e.markerKey = key
		}
	}
}

// WithIdentityKey overrides the item identity key used by identity-keyed
// arrays and composite value maps.
func WithIdentityKey(key string) Option {
	return func(e *Engine) {
		if key != "" {
			e.idKey = key
		}
	}
}

// WithCompositeKeys overrides the tree and values keys of the identity
// composite shape. Empty values keep the defaults.
func WithCompositeKeys(treeKey, valuesKey string) Option {
	return func(e *Engine) {
		if treeKey != "" {
			e.treeKey = treeKey
		}
		if valuesKey != "" {
			e.valuesKey = valuesKey
		}
	}
}

// New constructs an engine with the default sentinel keys, applying any
// overrides.
func New(opts ...Option) *Engine {
	e := &Engine{
		markerKey: DefaultMarkerKey,
		idKey:     DefaultIDKey,
		typeKey:   DefaultTypeKey,
		treeKey:   DefaultTreeKey,
		valuesKey: DefaultValuesKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MarkerKey reports the marker key this engine recognises.
func (e *Engine) MarkerKey() string { return e.markerKey }

// Marker returns a fresh boolean marker, the placeholder a structure stores
// where a localized leaf belongs.
func (e *Engine) Marker() map[string]any {
	return map[string]any{e.markerKey: true}
}

// Wrap returns the value-carrying marker form used to submit localized
// content inline.
func (e *Engine) Wrap(value any) map[string]any {
	return map[string]any{e.markerKey: value}
}
