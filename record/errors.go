package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordTypeRequired   = errors.New("record: record type does not exist")
	ErrRecordIDRequired     = errors.New("record: record id required")
	ErrSlugRequired         = errors.New("record: slug is required")
	ErrSlugInvalid          = errors.New("record: slug contains invalid characters")
	ErrSlugExists           = errors.New("record: slug already exists")
	ErrUnknownLocale        = errors.New("record: unknown locale")
	ErrDuplicateLocale      = errors.New("record: duplicate locale provided")
	ErrNoTranslations       = errors.New("record: at least one translation is required")
	ErrTranslationNotFound  = errors.New("record: translation not found")
	ErrUnknownField         = errors.New("record: field is not declared by the record type")
	ErrVirtualFieldWrite    = errors.New("record: virtual fields cannot be written")
	ErrFieldsetInvalid      = errors.New("record: record type declares an invalid field set")
	ErrPayloadSchemaInvalid = errors.New("record: payload schema validation failed")
)

// NotFoundError reports a missing persisted resource.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "record: not found"
	}
	return fmt.Sprintf("record: %s not found: %s", e.Resource, e.Key)
}

// UnknownFieldError identifies the offending payload key.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	if e == nil || strings.TrimSpace(e.Field) == "" {
		return ErrUnknownField.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnknownField.Error(), e.Field)
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// VirtualFieldWriteError identifies a virtual field supplied in a write
// payload.
type VirtualFieldWriteError struct {
	Field string
}

func (e *VirtualFieldWriteError) Error() string {
	if e == nil || strings.TrimSpace(e.Field) == "" {
		return ErrVirtualFieldWrite.Error()
	}
	return fmt.Sprintf("%s: %s", ErrVirtualFieldWrite.Error(), e.Field)
}

func (e *VirtualFieldWriteError) Unwrap() error {
	return ErrVirtualFieldWrite
}
