package record

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-fields/field"
	"github.com/goliatone/go-fields/internal/identity"
	"github.com/goliatone/go-fields/internal/logging"
	schemavalidation "github.com/goliatone/go-fields/internal/validation"
	"github.com/goliatone/go-fields/localize"
	"github.com/goliatone/go-fields/pkg/interfaces"
	"github.com/google/uuid"
)

// Service exposes record management use-cases: locale-aware writes that
// split localized fields into structure plus side-row values, and reads
// that merge them back for a requested locale.
type Service interface {
	Create(ctx context.Context, req CreateRecordRequest) (*Record, error)
	Update(ctx context.Context, req UpdateRecordRequest) (*Record, error)
	Delete(ctx context.Context, req DeleteRecordRequest) error
	Get(ctx context.Context, id uuid.UUID, opts ResolveOptions) (*Document, error)
	GetBySlug(ctx context.Context, slug string, opts ResolveOptions) (*Document, error)
	List(ctx context.Context, opts ResolveOptions) ([]*Document, error)
	UpsertTranslation(ctx context.Context, req UpsertTranslationRequest) (*Translation, error)
	DeleteTranslation(ctx context.Context, req DeleteTranslationRequest) error
	AvailableLocales(ctx context.Context, id uuid.UUID) ([]string, error)
}

// ResolveOptions selects the locale a read resolves documents for. An empty
// locale resolves the default locale.
type ResolveOptions struct {
	Locale string
}

// CreateRecordRequest captures the information required to create a record.
// Fields is the submitted document in the request's locale; localized fields
// are split before anything is persisted.
type CreateRecordRequest struct {
	RecordTypeID uuid.UUID
	Slug         string
	Status       string
	Locale       string
	Title        string
	Fields       map[string]any
	CreatedBy    uuid.UUID
	UpdatedBy    uuid.UUID
}

// Validate checks the request before it reaches storage.
func (r CreateRecordRequest) Validate() error {
	errs := validation.Errors{}
	if r.RecordTypeID == uuid.Nil {
		errs["record_type_id"] = validation.NewError("fields.record.type_required", "record type id is required")
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs["slug"] = validation.NewError("fields.record.slug_required", "slug is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest captures mutable fields for an existing record.
type UpdateRecordRequest struct {
	ID        uuid.UUID
	Status    string
	Locale    string
	Title     string
	Fields    map[string]any
	UpdatedBy uuid.UUID
}

func (r UpdateRecordRequest) Validate() error {
	errs := validation.Errors{}
	if r.ID == uuid.Nil {
		errs["id"] = validation.NewError("fields.record.id_required", "record id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteRecordRequest captures the information required to remove a record
// and its side rows.
type DeleteRecordRequest struct {
	ID        uuid.UUID
	DeletedBy uuid.UUID
}

// UpsertTranslationRequest writes one locale's values for a record. Only
// i18n-located fields may appear in the payload.
type UpsertTranslationRequest struct {
	RecordID  uuid.UUID
	Locale    string
	Title     string
	Fields    map[string]any
	UpdatedBy uuid.UUID
}

func (r UpsertTranslationRequest) Validate() error {
	errs := validation.Errors{}
	if r.RecordID == uuid.Nil {
		errs["record_id"] = validation.NewError("fields.translation.record_required", "record id is required")
	}
	if strings.TrimSpace(r.Locale) == "" {
		errs["locale"] = validation.NewError("fields.translation.locale_required", "locale is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteTranslationRequest drops one locale's side row.
type DeleteTranslationRequest struct {
	RecordID  uuid.UUID
	Locale    string
	DeletedBy uuid.UUID
}

// ErrFieldNotLocalized rejects main-located fields in translation payloads.
var ErrFieldNotLocalized = errors.New("record: field is not localized")

// IDGenerator produces record identifiers.
type IDGenerator func() uuid.UUID

type service struct {
	records       RecordRepository
	types         RecordTypeRepository
	locales       LocaleRepository
	translations  TranslationRepository
	engine        *localize.Engine
	defaultLocale string
	now           func() time.Time
	id            IDGenerator
	logger        interfaces.Logger
}

// ServiceOption configures the record service.
type ServiceOption func(*service)

// WithEngine overrides the localization engine, e.g. to change the marker
// key.
func WithEngine(engine *localize.Engine) ServiceOption {
	return func(s *service) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithDefaultLocale sets the fallback locale used to fill gaps on reads.
func WithDefaultLocale(code string) ServiceOption {
	return func(s *service) {
		if trimmed := strings.TrimSpace(code); trimmed != "" {
			s.defaultLocale = trimmed
		}
	}
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the record id source.
func WithIDGenerator(gen IDGenerator) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.id = gen
		}
	}
}

// DefaultLocaleCode is used when no default locale is configured.
const DefaultLocaleCode = "en"

// NewService constructs a record service with the required dependencies.
func NewService(records RecordRepository, types RecordTypeRepository, locales LocaleRepository, translations TranslationRepository, opts ...ServiceOption) Service {
	s := &service{
		records:       records,
		types:         types,
		locales:       locales,
		translations:  translations,
		engine:        localize.New(),
		defaultLocale: DefaultLocaleCode,
		now:           time.Now,
		id:            uuid.New,
		logger:        logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create orchestrates creation of a record with its first locale's values.
func (s *service) Create(ctx context.Context, req CreateRecordRequest) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if !IsValidSlug(slug) {
		normalized, err := NormalizeSlug(slug)
		if err != nil || !IsValidSlug(normalized) {
			return nil, ErrSlugInvalid
		}
		slug = normalized
	}

	if existing, err := s.records.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, ErrSlugExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	recordType, err := s.types.GetByID(ctx, req.RecordTypeID)
	if err != nil {
		return nil, ErrRecordTypeRequired
	}
	collection, err := recordType.Collection()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFieldsetInvalid, err)
	}
	if err := schemavalidation.ValidatePayload(recordType.Schema, req.Fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadSchemaInvalid, err)
	}

	locale, err := s.resolveLocale(ctx, req.Locale)
	if err != nil {
		return nil, err
	}

	mainFields, localeValues, err := s.splitPayload(collection, req.Fields)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec := &Record{
		ID:           s.id(),
		RecordTypeID: req.RecordTypeID,
		Slug:         slug,
		Status:       chooseStatus(req.Status),
		Fields:       mainFields,
		CreatedBy:    req.CreatedBy,
		UpdatedBy:    req.UpdatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	if localeValues != nil || strings.TrimSpace(req.Title) != "" {
		translation := &Translation{
			ID:        identity.TranslationUUID(created.ID, locale.ID),
			RecordID:  created.ID,
			LocaleID:  locale.ID,
			Title:     req.Title,
			Values:    ensureValues(localeValues),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := s.translations.Upsert(ctx, translation); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("record.create", "record_id", created.ID.String(), "locale", locale.Code)
	return created, nil
}

// Update recomputes structure and values for the supplied fields. Fields
// absent from the payload keep their stored artifacts untouched.
func (s *service) Update(ctx context.Context, req UpdateRecordRequest) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.records.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	recordType, err := s.types.GetByID(ctx, rec.RecordTypeID)
	if err != nil {
		return nil, ErrRecordTypeRequired
	}
	collection, err := recordType.Collection()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFieldsetInvalid, err)
	}

	locale, err := s.resolveLocale(ctx, req.Locale)
	if err != nil {
		return nil, err
	}

	mainFields, localeValues, err := s.splitPayload(collection, req.Fields)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}
	for name, value := range mainFields {
		rec.Fields[name] = value
	}
	if req.Status != "" {
		rec.Status = chooseStatus(req.Status)
	}
	rec.UpdatedBy = req.UpdatedBy
	rec.UpdatedAt = now

	updated, err := s.records.Update(ctx, rec)
	if err != nil {
		return nil, err
	}

	if localeValues != nil || strings.TrimSpace(req.Title) != "" {
		if err := s.upsertLocaleValues(ctx, updated.ID, locale, req.Title, localeValues, now); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("record.update", "record_id", updated.ID.String(), "locale", locale.Code)
	return updated, nil
}

// Delete removes a record and every per-locale side row.
func (s *service) Delete(ctx context.Context, req DeleteRecordRequest) error {
	if req.ID == uuid.Nil {
		return ErrRecordIDRequired
	}
	translations, err := s.translations.ListByRecord(ctx, req.ID)
	if err != nil {
		return err
	}
	for _, tr := range translations {
		if err := s.translations.Delete(ctx, tr.ID); err != nil {
			return err
		}
	}
	return s.records.Delete(ctx, req.ID)
}

// UpsertTranslation writes one locale's leaf values. The shared structure is
// recomputed from the submitted payload so both artifacts stay consistent.
func (s *service) UpsertTranslation(ctx context.Context, req UpsertTranslationRequest) (*Translation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.records.GetByID(ctx, req.RecordID)
	if err != nil {
		return nil, err
	}
	recordType, err := s.types.GetByID(ctx, rec.RecordTypeID)
	if err != nil {
		return nil, ErrRecordTypeRequired
	}
	collection, err := recordType.Collection()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFieldsetInvalid, err)
	}

	locale, err := s.resolveLocale(ctx, req.Locale)
	if err != nil {
		return nil, err
	}

	for name := range req.Fields {
		f, ok := collection.Lookup(name)
		if !ok {
			return nil, &UnknownFieldError{Field: name}
		}
		switch f.Location() {
		case field.LocationVirtual:
			return nil, &VirtualFieldWriteError{Field: name}
		case field.LocationMain:
			return nil, fmt.Errorf("%w: %s", ErrFieldNotLocalized, name)
		}
	}

	mainFields, localeValues, err := s.splitPayload(collection, req.Fields)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if len(mainFields) > 0 {
		if rec.Fields == nil {
			rec.Fields = map[string]any{}
		}
		for name, structure := range mainFields {
			rec.Fields[name] = structure
		}
		rec.UpdatedBy = req.UpdatedBy
		rec.UpdatedAt = now
		if _, err := s.records.Update(ctx, rec); err != nil {
			return nil, err
		}
	}

	if err := s.upsertLocaleValues(ctx, rec.ID, locale, req.Title, localeValues, now); err != nil {
		return nil, err
	}

	s.logger.Debug("record.translation.upsert", "record_id", rec.ID.String(), "locale", locale.Code)
	return s.translations.GetByRecordAndLocale(ctx, rec.ID, locale.ID)
}

// DeleteTranslation drops the side row of one locale.
func (s *service) DeleteTranslation(ctx context.Context, req DeleteTranslationRequest) error {
	if req.RecordID == uuid.Nil {
		return ErrRecordIDRequired
	}
	locale, err := s.resolveLocale(ctx, req.Locale)
	if err != nil {
		return err
	}
	translation, err := s.translations.GetByRecordAndLocale(ctx, req.RecordID, locale.ID)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return ErrTranslationNotFound
		}
		return err
	}
	return s.translations.Delete(ctx, translation.ID)
}

// AvailableLocales lists the locale codes a record has side rows for.
func (s *service) AvailableLocales(ctx context.Context, id uuid.UUID) ([]string, error) {
	if id == uuid.Nil {
		return nil, ErrRecordIDRequired
	}
	translations, err := s.translations.ListByRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(translations))
	for _, tr := range translations {
		locale, err := s.locales.GetByID(ctx, tr.LocaleID)
		if err != nil {
			continue
		}
		codes = append(codes, locale.Code)
	}
	sort.Strings(codes)
	return codes, nil
}

// splitPayload routes every payload entry through the field classifier:
// virtual fields are rejected, main fields pass through, i18n fields are
// split into structure plus leaf values.
func (s *service) splitPayload(collection *field.Collection, payload map[string]any) (map[string]any, map[string]any, error) {
	mainFields := make(map[string]any, len(payload))
	var localeValues map[string]any
	for name, value := range payload {
		f, ok := collection.Lookup(name)
		if !ok {
			return nil, nil, &UnknownFieldError{Field: name}
		}
		switch f.Location() {
		case field.LocationVirtual:
			return nil, nil, &VirtualFieldWriteError{Field: name}
		case field.LocationMain:
			mainFields[name] = value
		case field.LocationI18N:
			var structure, leaves any
			if f.AutoLocalized() {
				structure, leaves = s.engine.SplitAuto(value)
			} else {
				var err error
				structure, leaves, err = s.engine.Split(value, f.LocalizationSchema())
				if err != nil {
					return nil, nil, err
				}
			}
			mainFields[name] = structure
			if leaves != nil {
				if localeValues == nil {
					localeValues = map[string]any{}
				}
				localeValues[name] = leaves
			}
		}
	}
	return mainFields, localeValues, nil
}

// upsertLocaleValues merges new values into the locale's side row at the
// field-name level: fields absent from this write keep their prior values.
func (s *service) upsertLocaleValues(ctx context.Context, recordID uuid.UUID, locale *Locale, title string, values map[string]any, now time.Time) error {
	translation := &Translation{
		ID:        identity.TranslationUUID(recordID, locale.ID),
		RecordID:  recordID,
		LocaleID:  locale.ID,
		Title:     title,
		Values:    ensureValues(values),
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := s.translations.GetByRecordAndLocale(ctx, recordID, locale.ID)
	if err == nil && existing != nil {
		merged := cloneMap(existing.Values)
		if merged == nil {
			merged = map[string]any{}
		}
		for name, value := range values {
			merged[name] = value
		}
		translation.Values = merged
		if strings.TrimSpace(title) == "" {
			translation.Title = existing.Title
		}
		translation.CreatedAt = existing.CreatedAt
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	_, err = s.translations.Upsert(ctx, translation)
	return err
}

func (s *service) resolveLocale(ctx context.Context, code string) (*Locale, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		trimmed = s.defaultLocale
	}
	locale, err := s.locales.GetByCode(ctx, trimmed)
	if err != nil {
		return nil, ErrUnknownLocale
	}
	return locale, nil
}

func chooseStatus(status string) string {
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		return trimmed
	}
	return "draft"
}

func ensureValues(values map[string]any) map[string]any {
	if values == nil {
		return map[string]any{}
	}
	return values
}
