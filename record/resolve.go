package record

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-fields/field"
	"github.com/goliatone/go-fields/localize"
	"github.com/google/uuid"
)

// Get resolves a record by id into a document for the requested locale.
func (s *service) Get(ctx context.Context, id uuid.UUID, opts ResolveOptions) (*Document, error) {
	if id == uuid.Nil {
		return nil, ErrRecordIDRequired
	}
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, rec, opts)
}

// GetBySlug resolves a record by slug into a document for the requested
// locale.
func (s *service) GetBySlug(ctx context.Context, slug string, opts ResolveOptions) (*Document, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrSlugRequired
	}
	rec, err := s.records.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, rec, opts)
}

// List resolves every record into a document for the requested locale.
func (s *service) List(ctx context.Context, opts ResolveOptions) ([]*Document, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(records))
	for _, rec := range records {
		doc, err := s.resolve(ctx, rec, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// resolve merges the record's shared structure with the requested locale's
// values, falling back to the default locale for gaps. Fields a marker
// resolves nowhere for are omitted from the document.
func (s *service) resolve(ctx context.Context, rec *Record, opts ResolveOptions) (*Document, error) {
	recordType, err := s.types.GetByID(ctx, rec.RecordTypeID)
	if err != nil {
		return nil, ErrRecordTypeRequired
	}
	collection, err := recordType.Collection()
	if err != nil {
		return nil, err
	}

	localeCode := strings.TrimSpace(opts.Locale)
	if localeCode == "" {
		localeCode = s.defaultLocale
	}
	locale, err := s.locales.GetByCode(ctx, localeCode)
	if err != nil {
		return nil, ErrUnknownLocale
	}

	current, err := s.translationFor(ctx, rec.ID, locale.ID)
	if err != nil {
		return nil, err
	}
	var fallback *Translation
	if !strings.EqualFold(locale.Code, s.defaultLocale) {
		defaultLocale, err := s.locales.GetByCode(ctx, s.defaultLocale)
		if err == nil {
			fallback, err = s.translationFor(ctx, rec.ID, defaultLocale.ID)
			if err != nil {
				return nil, err
			}
		}
	}

	fields := make(map[string]any, len(rec.Fields))
	for _, f := range collection.Fields() {
		switch f.Location() {
		case field.LocationVirtual:
			continue
		case field.LocationMain:
			if value, ok := rec.Fields[f.Name]; ok {
				fields[f.Name] = value
			}
		case field.LocationI18N:
			structure, ok := rec.Fields[f.Name]
			if !ok {
				continue
			}
			merged := s.engine.Merge(structure, fieldValues(current, f.Name), fieldValues(fallback, f.Name))
			if merged != nil {
				fields[f.Name] = merged
			}
		}
	}

	title := localize.CoalesceString(translationTitle(current), translationTitle(fallback))

	return &Document{
		Record: rec,
		Locale: locale.Code,
		Title:  title,
		Fields: fields,
	}, nil
}

// translationFor returns the side row for a (record, locale) pair, nil when
// the locale has no row yet.
func (s *service) translationFor(ctx context.Context, recordID, localeID uuid.UUID) (*Translation, error) {
	translation, err := s.translations.GetByRecordAndLocale(ctx, recordID, localeID)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	return translation, nil
}

func fieldValues(translation *Translation, name string) any {
	if translation == nil || translation.Values == nil {
		return nil
	}
	return translation.Values[name]
}

func translationTitle(translation *Translation) string {
	if translation == nil {
		return ""
	}
	return translation.Title
}
