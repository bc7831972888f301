package record

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordRepository persists canonical record rows.
type RecordRepository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	Update(ctx context.Context, record *Record) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	GetBySlug(ctx context.Context, slug string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordTypeRepository persists record type declarations.
type RecordTypeRepository interface {
	Create(ctx context.Context, recordType *RecordType) (*RecordType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RecordType, error)
	GetByName(ctx context.Context, name string) (*RecordType, error)
}

// LocaleRepository resolves locales by code or id.
type LocaleRepository interface {
	Create(ctx context.Context, locale *Locale) (*Locale, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Locale, error)
	GetByCode(ctx context.Context, code string) (*Locale, error)
	List(ctx context.Context) ([]*Locale, error)
}

// TranslationRepository persists the per-locale side rows.
type TranslationRepository interface {
	Upsert(ctx context.Context, translation *Translation) (*Translation, error)
	GetByRecordAndLocale(ctx context.Context, recordID, localeID uuid.UUID) (*Translation, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*Translation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewLocaleRepository(db *bun.DB) repository.Repository[*Locale] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Locale]{
		NewRecord: func() *Locale { return &Locale{} },
		GetID: func(l *Locale) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Locale, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Locale) string {
			return l.Code
		},
	})
}

func NewRecordTypeRepository(db *bun.DB) repository.Repository[*RecordType] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*RecordType]{
		NewRecord: func() *RecordType { return &RecordType{} },
		GetID: func(rt *RecordType) uuid.UUID {
			return rt.ID
		},
		SetID: func(rt *RecordType, id uuid.UUID) {
			rt.ID = id
		},
		GetIdentifier: func() string {
			return "name"
		},
		GetIdentifierValue: func(rt *RecordType) string {
			return rt.Name
		},
	})
}

func NewRecordRepository(db *bun.DB) repository.Repository[*Record] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Record]{
		NewRecord: func() *Record { return &Record{} },
		GetID: func(r *Record) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Record, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(r *Record) string {
			return r.Slug
		},
	})
}

func NewTranslationRepository(db *bun.DB) repository.Repository[*Translation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Translation]{
		NewRecord: func() *Translation { return &Translation{} },
		GetID: func(tr *Translation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *Translation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *Translation) string {
			return tr.ID.String()
		},
	})
}
