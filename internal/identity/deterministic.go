// Package identity derives deterministic UUIDs for rows whose natural key is
// a string, so repeated writes upsert instead of duplicating.
package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// LocaleUUID derives the id for a locale row from its code.
func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("go-fields:locale:" + strings.ToLower(strings.TrimSpace(localeCode)))
}

// RecordTypeUUID derives the id for a record type from its name.
func RecordTypeUUID(name string) uuid.UUID {
	return UUID("go-fields:record_type:" + strings.ToLower(strings.TrimSpace(name)))
}

// TranslationUUID derives the id for a record's per-locale side row, keyed
// by (record, locale).
func TranslationUUID(recordID, localeID uuid.UUID) uuid.UUID {
	return UUID("go-fields:record_translation:" + recordID.String() + ":" + localeID.String())
}
