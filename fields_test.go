package fields_test

import (
	"context"
	"testing"

	fields "github.com/goliatone/go-fields"
	"github.com/goliatone/go-fields/field"
	"github.com/goliatone/go-fields/internal/identity"
	"github.com/goliatone/go-fields/record"
	"github.com/google/uuid"
)

func newModule(t *testing.T, cfg fields.Config) (*fields.Module, *record.MemoryLocaleRepository, *record.MemoryRecordTypeRepository) {
	t.Helper()

	records := record.NewMemoryRecordRepository()
	types := record.NewMemoryRecordTypeRepository()
	locales := record.NewMemoryLocaleRepository()
	translations := record.NewMemoryTranslationRepository()

	module, err := fields.New(cfg, fields.WithRepositories(records, types, locales, translations))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module, locales, types
}

func TestModuleRoundTrip(t *testing.T) {
	cfg := fields.DefaultConfig()
	module, locales, types := newModule(t, cfg)

	locales.Put(&fields.Locale{ID: identity.LocaleUUID("en"), Code: "en", Display: "English", IsDefault: true, IsActive: true})
	locales.Put(&fields.Locale{ID: identity.LocaleUUID("de"), Code: "de", Display: "German", IsActive: true})

	recordType := &fields.RecordType{
		ID:   uuid.New(),
		Name: "page",
		Fields: []field.Field{
			{Name: "body", Type: "richtext", Options: field.Options{Localized: true}},
		},
	}
	if _, err := types.Create(context.Background(), recordType); err != nil {
		t.Fatalf("seed record type: %v", err)
	}

	svc := module.Records()
	created, err := svc.Create(context.Background(), record.CreateRecordRequest{
		RecordTypeID: recordType.ID,
		Slug:         "about",
		Locale:       "en",
		Title:        "About",
		Fields:       map[string]any{"body": "Hello"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpsertTranslation(context.Background(), record.UpsertTranslationRequest{
		RecordID: created.ID,
		Locale:   "de",
		Title:    "Uber uns",
		Fields:   map[string]any{"body": "Hallo"},
	}); err != nil {
		t.Fatalf("upsert translation: %v", err)
	}

	doc, err := svc.Get(context.Background(), created.ID, record.ResolveOptions{Locale: "de"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.Fields["body"] != "Hallo" {
		t.Fatalf("body = %v", doc.Fields["body"])
	}
}

func TestModuleCustomMarkerKey(t *testing.T) {
	cfg := fields.DefaultConfig()
	cfg.MarkerKey = "$loc"
	module, _, _ := newModule(t, cfg)

	if module.Engine().MarkerKey() != "$loc" {
		t.Fatalf("marker key = %q", module.Engine().MarkerKey())
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := fields.DefaultConfig()
	cfg.DefaultLocale = ""

	if _, err := fields.New(cfg); err == nil {
		t.Fatal("expected config validation error")
	}
}
