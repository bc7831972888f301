// Package fields assembles the schema-driven localized record engine: field
// declarations, the split/merge localization core, and the record service
// that persists structure and per-locale values separately.
package fields

import (
	"strings"

	"github.com/goliatone/go-fields/field"
	"github.com/goliatone/go-fields/internal/logging"
	"github.com/goliatone/go-fields/internal/logging/gologger"
	"github.com/goliatone/go-fields/localize"
	"github.com/goliatone/go-fields/pkg/interfaces"
	"github.com/goliatone/go-fields/record"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Service exports the record service contract for consumers of the module.
type Service = record.Service

// Document exports the locale-resolved read model.
type Document = record.Document

// Record exports the canonical record row.
type Record = record.Record

// RecordType exports the record type declaration.
type RecordType = record.RecordType

// Locale exports the locale row.
type Locale = record.Locale

// Translation exports the per-locale side row.
type Translation = record.Translation

// Field exports the field declaration type.
type Field = field.Field

// FieldOptions exports the field declaration options.
type FieldOptions = field.Options

// Engine exports the split/merge localization engine.
type Engine = localize.Engine

// Module is the top level runtime facade.
type Module struct {
	config   Config
	engine   *localize.Engine
	provider interfaces.LoggerProvider
	service  record.Service

	records      record.RecordRepository
	types        record.RecordTypeRepository
	locales      record.LocaleRepository
	translations record.TranslationRepository

	db *bun.DB
}

// Option overrides a module dependency.
type Option func(*Module)

// WithBunDB runs the module against bun storage instead of the in-memory
// repositories.
func WithBunDB(db *bun.DB) Option {
	return func(m *Module) {
		m.db = db
	}
}

// WithRepositories injects pre-built repositories, e.g. custom
// implementations or instrumented wrappers.
func WithRepositories(records record.RecordRepository, types record.RecordTypeRepository, locales record.LocaleRepository, translations record.TranslationRepository) Option {
	return func(m *Module) {
		m.records = records
		m.types = types
		m.locales = locales
		m.translations = translations
	}
}

// WithLoggerProvider overrides the logger provider. Defaults to the
// go-logger backend configured through Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// New constructs a module from the configuration plus optional dependency
// overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	engineOpts := []localize.Option{}
	if strings.TrimSpace(cfg.MarkerKey) != "" {
		engineOpts = append(engineOpts, localize.WithMarkerKey(cfg.MarkerKey))
	}
	m.engine = localize.New(engineOpts...)

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if err := m.buildRepositories(); err != nil {
		return nil, err
	}

	m.service = record.NewService(m.records, m.types, m.locales, m.translations,
		record.WithEngine(m.engine),
		record.WithDefaultLocale(cfg.DefaultLocale),
		record.WithLogger(logging.RecordLogger(m.provider)),
	)

	return m, nil
}

// buildRepositories wires storage: bun-backed repositories when a DB is
// present, optionally cache-wrapped, in-memory otherwise.
func (m *Module) buildRepositories() error {
	if m.records != nil && m.types != nil && m.locales != nil && m.translations != nil {
		return nil
	}
	if m.db == nil {
		m.records = record.NewMemoryRecordRepository()
		m.types = record.NewMemoryRecordTypeRepository()
		m.locales = record.NewMemoryLocaleRepository()
		m.translations = record.NewMemoryTranslationRepository()
		return nil
	}

	var (
		cacheService  repocache.CacheService
		keySerializer repocache.KeySerializer
	)
	if m.config.Cache.Enabled {
		cacheCfg := repocache.DefaultConfig()
		cacheCfg.TTL = m.config.Cache.TTL
		service, err := repocache.NewCacheService(cacheCfg)
		if err != nil {
			return err
		}
		cacheService = service
		keySerializer = repocache.NewDefaultKeySerializer()
	}

	m.records = record.NewBunRecordRepositoryWithCache(m.db, cacheService, keySerializer)
	m.types = record.NewBunRecordTypeRepositoryWithCache(m.db, cacheService, keySerializer)
	m.locales = record.NewBunLocaleRepositoryWithCache(m.db, cacheService, keySerializer)
	m.translations = record.NewBunTranslationRepositoryWithCache(m.db, cacheService, keySerializer)
	return nil
}

// Records returns the configured record service.
func (m *Module) Records() Service {
	return m.service
}

// Engine returns the localization engine, e.g. for callers that split or
// merge outside the record service.
func (m *Module) Engine() *Engine {
	return m.engine
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.config
}
