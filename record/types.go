// Package record persists schema-driven records whose localized fields are
// split into a shared structure and per-locale side rows, and reconstructs
// locale-specific documents on read.
package record

import (
	"time"

	"github.com/goliatone/go-fields/field"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Locale represents a supported language.
type Locale struct {
	bun.BaseModel `bun:"table:locales,alias:l"`

	ID        uuid.UUID      `bun:",pk,type:uuid"         json:"id"`
	Code      string         `bun:"code,notnull"          json:"code"`
	Display   string         `bun:"display_name,notnull"  json:"display_name"`
	IsActive  bool           `bun:"is_active,notnull,default:true"   json:"is_active"`
	IsDefault bool           `bun:"is_default,notnull,default:false" json:"is_default"`
	Metadata  map[string]any `bun:"metadata,type:jsonb"   json:"metadata,omitempty"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// RecordType defines the fixed field set and optional payload schema of a
// family of records.
type RecordType struct {
	bun.BaseModel `bun:"table:record_types,alias:rt"`

	ID          uuid.UUID      `bun:",pk,type:uuid"             json:"id"`
	Name        string         `bun:"name,notnull"              json:"name"`
	Description *string        `bun:"description"               json:"description,omitempty"`
	Fields      []field.Field  `bun:"fields,type:jsonb,notnull" json:"fields"`
	Schema      map[string]any `bun:"schema,type:jsonb"         json:"schema,omitempty"`
	CreatedAt   time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Collection builds the ordered field collection declared by the type.
func (rt *RecordType) Collection() (*field.Collection, error) {
	return field.NewCollection(rt.Fields...)
}

// Record is the canonical, language-neutral row of an entry. Fields holds
// main-located values plus the marker structure of every localized field; it
// never contains localized content.
type Record struct {
	bun.BaseModel `bun:"table:records,alias:r"`

	ID           uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	RecordTypeID uuid.UUID      `bun:"record_type_id,notnull,type:uuid" json:"record_type_id"`
	Slug         string         `bun:"slug,notnull" json:"slug"`
	Status       string         `bun:"status,notnull,default:'draft'" json:"status"`
	Fields       map[string]any `bun:"fields,type:jsonb,notnull" json:"fields"`
	CreatedBy    uuid.UUID      `bun:"created_by,notnull,type:uuid" json:"created_by"`
	UpdatedBy    uuid.UUID      `bun:"updated_by,notnull,type:uuid" json:"updated_by"`
	DeletedAt    *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Type         *RecordType    `bun:"rel:belongs-to,join:record_type_id=id" json:"record_type,omitempty"`
	Translations []*Translation `bun:"rel:has-many,join:id=record_id" json:"translations,omitempty"`
}

// Translation is the per-locale side row: the flat localized title column
// plus the localized leaf values of every i18n field, keyed by field name.
type Translation struct {
	bun.BaseModel `bun:"table:record_translations,alias:tr"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	RecordID  uuid.UUID      `bun:"record_id,notnull,type:uuid" json:"record_id"`
	LocaleID  uuid.UUID      `bun:"locale_id,notnull,type:uuid" json:"locale_id"`
	Title     string         `bun:"title" json:"title"`
	Values    map[string]any `bun:"values,type:jsonb,notnull" json:"values"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Locale *Locale `bun:"rel:belongs-to,join:locale_id=id" json:"locale,omitempty"`
}

// Document is a record resolved for one locale: the structure merged with
// the locale's values, gaps filled from the default locale.
type Document struct {
	Record *Record        `json:"record"`
	Locale string         `json:"locale"`
	Title  string         `json:"title"`
	Fields map[string]any `json:"fields"`
}
