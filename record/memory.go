package record

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRecordRepository is an in-memory implementation for scaffolding and
// tests.
type MemoryRecordRepository struct {
	mu        sync.RWMutex
	records   map[uuid.UUID]*Record
	slugIndex map[string]uuid.UUID
}

// NewMemoryRecordRepository creates an empty in-memory record repository.
func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records:   make(map[uuid.UUID]*Record),
		slugIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryRecordRepository) Create(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecord(record)
	m.records[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneRecord(copied), nil
}

func (m *MemoryRecordRepository) Update(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "record", Key: record.ID.String()}
	}
	delete(m.slugIndex, existing.Slug)

	copied := cloneRecord(record)
	m.records[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneRecord(copied), nil
}

func (m *MemoryRecordRepository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "record", Key: id.String()}
	}
	return cloneRecord(rec), nil
}

func (m *MemoryRecordRepository) GetBySlug(_ context.Context, slug string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "record", Key: slug}
	}
	return cloneRecord(m.records[id]), nil
}

func (m *MemoryRecordRepository) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

func (m *MemoryRecordRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return &NotFoundError{Resource: "record", Key: id.String()}
	}
	delete(m.slugIndex, rec.Slug)
	delete(m.records, id)
	return nil
}

// MemoryRecordTypeRepository stores record types in memory.
type MemoryRecordTypeRepository struct {
	mu        sync.RWMutex
	types     map[uuid.UUID]*RecordType
	nameIndex map[string]uuid.UUID
}

func NewMemoryRecordTypeRepository() *MemoryRecordTypeRepository {
	return &MemoryRecordTypeRepository{
		types:     make(map[uuid.UUID]*RecordType),
		nameIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryRecordTypeRepository) Create(_ context.Context, recordType *RecordType) (*RecordType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRecordType(recordType)
	m.types[copied.ID] = copied
	m.nameIndex[strings.ToLower(copied.Name)] = copied.ID
	return cloneRecordType(copied), nil
}

func (m *MemoryRecordTypeRepository) GetByID(_ context.Context, id uuid.UUID) (*RecordType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rt, ok := m.types[id]
	if !ok {
		return nil, &NotFoundError{Resource: "record_type", Key: id.String()}
	}
	return cloneRecordType(rt), nil
}

func (m *MemoryRecordTypeRepository) GetByName(_ context.Context, name string) (*RecordType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.nameIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &NotFoundError{Resource: "record_type", Key: name}
	}
	return cloneRecordType(m.types[id]), nil
}

// MemoryLocaleRepository stores locales in memory.
type MemoryLocaleRepository struct {
	mu        sync.RWMutex
	locales   map[uuid.UUID]*Locale
	codeIndex map[string]uuid.UUID
}

func NewMemoryLocaleRepository() *MemoryLocaleRepository {
	return &MemoryLocaleRepository{
		locales:   make(map[uuid.UUID]*Locale),
		codeIndex: make(map[string]uuid.UUID),
	}
}

func (m *MemoryLocaleRepository) Create(_ context.Context, locale *Locale) (*Locale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneLocale(locale)
	m.locales[copied.ID] = copied
	m.codeIndex[strings.ToLower(copied.Code)] = copied.ID
	return cloneLocale(copied), nil
}

// Put seeds a locale, replacing any existing row with the same id.
func (m *MemoryLocaleRepository) Put(locale *Locale) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneLocale(locale)
	m.locales[copied.ID] = copied
	m.codeIndex[strings.ToLower(copied.Code)] = copied.ID
}

func (m *MemoryLocaleRepository) GetByID(_ context.Context, id uuid.UUID) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	loc, ok := m.locales[id]
	if !ok {
		return nil, &NotFoundError{Resource: "locale", Key: id.String()}
	}
	return cloneLocale(loc), nil
}

func (m *MemoryLocaleRepository) GetByCode(_ context.Context, code string) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.codeIndex[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, &NotFoundError{Resource: "locale", Key: code}
	}
	return cloneLocale(m.locales[id]), nil
}

func (m *MemoryLocaleRepository) List(_ context.Context) ([]*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Locale, 0, len(m.locales))
	for _, loc := range m.locales {
		out = append(out, cloneLocale(loc))
	}
	return out, nil
}

// MemoryTranslationRepository stores per-locale side rows in memory.
type MemoryTranslationRepository struct {
	mu           sync.RWMutex
	translations map[uuid.UUID]*Translation
}

func NewMemoryTranslationRepository() *MemoryTranslationRepository {
	return &MemoryTranslationRepository{
		translations: make(map[uuid.UUID]*Translation),
	}
}

func (m *MemoryTranslationRepository) Upsert(_ context.Context, translation *Translation) (*Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneTranslation(translation)
	m.translations[copied.ID] = copied
	return cloneTranslation(copied), nil
}

func (m *MemoryTranslationRepository) GetByRecordAndLocale(_ context.Context, recordID, localeID uuid.UUID) (*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, tr := range m.translations {
		if tr.RecordID == recordID && tr.LocaleID == localeID {
			return cloneTranslation(tr), nil
		}
	}
	return nil, &NotFoundError{Resource: "record_translation", Key: recordID.String() + ":" + localeID.String()}
}

func (m *MemoryTranslationRepository) ListByRecord(_ context.Context, recordID uuid.UUID) ([]*Translation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Translation, 0, len(m.translations))
	for _, tr := range m.translations {
		if tr.RecordID == recordID {
			out = append(out, cloneTranslation(tr))
		}
	}
	return out, nil
}

func (m *MemoryTranslationRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.translations[id]; !ok {
		return &NotFoundError{Resource: "record_translation", Key: id.String()}
	}
	delete(m.translations, id)
	return nil
}

func cloneRecord(in *Record) *Record {
	if in == nil {
		return nil
	}
	out := *in
	out.Fields = cloneMap(in.Fields)
	if in.Translations != nil {
		out.Translations = make([]*Translation, len(in.Translations))
		for i, tr := range in.Translations {
			out.Translations[i] = cloneTranslation(tr)
		}
	}
	return &out
}

func cloneRecordType(in *RecordType) *RecordType {
	if in == nil {
		return nil
	}
	out := *in
	if in.Fields != nil {
		out.Fields = append(out.Fields[:0:0], in.Fields...)
	}
	out.Schema = cloneMap(in.Schema)
	return &out
}

func cloneLocale(in *Locale) *Locale {
	if in == nil {
		return nil
	}
	out := *in
	out.Metadata = cloneMap(in.Metadata)
	return &out
}

func cloneTranslation(in *Translation) *Translation {
	if in == nil {
		return nil
	}
	out := *in
	out.Values = cloneMap(in.Values)
	return &out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(in any) any {
	switch v := in.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
