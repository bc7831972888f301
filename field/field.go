// Package field declares the typed field contract of a record type: each
// field names a storage column, a validation hook, and a localization
// policy. The derived Location decides where a field's data lives.
package field

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Location identifies where a field's data is persisted.
type Location string

const (
	// LocationMain stores the field in the record's main row.
	LocationMain Location = "main"
	// LocationI18N stores the field's values in a per-locale side row.
	LocationI18N Location = "i18n"
	// LocationVirtual marks a computed field that is never persisted.
	LocationVirtual Location = "virtual"
)

// SchemaAuto selects wrapper auto-detection instead of an explicit
// localization schema for a field.
const SchemaAuto = "auto"

// Options captures the declared configuration of a field.
type Options struct {
	// Localized routes the field's content through the per-locale side row.
	Localized bool `json:"localized,omitempty"`
	// Virtual is either the boolean true or an expression object; both mark
	// the field computed.
	Virtual any `json:"virtual,omitempty"`
	// Schema is the localization schema for composite localized fields: nil
	// (the whole value is localized), the string "auto", or a schema tree.
	Schema   any  `json:"schema,omitempty"`
	Required bool `json:"required,omitempty"`
	Default  any  `json:"default,omitempty"`
}

// Field is a declared unit of a record's shape. Fields are immutable once
// constructed.
type Field struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Options Options `json:"options,omitempty"`
}

// Location derives where the field's data lives. Virtual takes priority over
// localized; everything else is main. Total: every declaration maps to
// exactly one location.
func (f Field) Location() Location {
	if isVirtual(f.Options.Virtual) {
		return LocationVirtual
	}
	if f.Options.Localized {
		return LocationI18N
	}
	return LocationMain
}

// AutoLocalized reports whether the field uses wrapper auto-detection.
func (f Field) AutoLocalized() bool {
	s, ok := f.Options.Schema.(string)
	return ok && s == SchemaAuto
}

// LocalizationSchema returns the schema to split/merge this field with. A
// field declared localized without an explicit schema localizes its whole
// value.
func (f Field) LocalizationSchema() any {
	if f.Options.Schema == nil {
		return true
	}
	return f.Options.Schema
}

// Validate checks the field declaration.
func (f Field) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = validation.NewError("fields.field.name_required", "field name is required")
	}
	if strings.TrimSpace(f.Type) == "" {
		errs["type"] = validation.NewError("fields.field.type_required", "field type is required")
	}
	if f.Location() == LocationVirtual && f.Options.Localized {
		errs["localized"] = validation.NewError("fields.field.virtual_localized", "virtual fields cannot be localized")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isVirtual(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case map[string]any:
		return len(v) > 0
	default:
		return false
	}
}
