package field

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Collection is the fixed, ordered set of fields of a record type, set at
// schema-definition time. It is immutable after construction.
type Collection struct {
	fields []Field
	index  map[string]int
}

// NewCollection validates the declarations and builds a collection. Field
// names must be unique and non-empty.
func NewCollection(fields ...Field) (*Collection, error) {
	index := make(map[string]int, len(fields))
	errs := validation.Errors{}
	for i, f := range fields {
		if err := f.Validate(); err != nil {
			errs[f.Name] = err
			continue
		}
		name := strings.TrimSpace(f.Name)
		if _, exists := index[name]; exists {
			errs[name] = validation.NewError("fields.collection.duplicate_name", "duplicate field name")
			continue
		}
		index[name] = i
	}
	if len(errs) > 0 {
		return nil, errs
	}

	copied := make([]Field, len(fields))
	copy(copied, fields)
	return &Collection{fields: copied, index: index}, nil
}

// Fields returns the declared fields in order.
func (c *Collection) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Lookup finds a field by name.
func (c *Collection) Lookup(name string) (Field, bool) {
	i, ok := c.index[strings.TrimSpace(name)]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// Len reports the number of declared fields.
func (c *Collection) Len() int {
	return len(c.fields)
}

// Localized returns the fields whose location is i18n, in declaration order.
func (c *Collection) Localized() []Field {
	out := make([]Field, 0, len(c.fields))
	for _, f := range c.fields {
		if f.Location() == LocationI18N {
			out = append(out, f)
		}
	}
	return out
}
