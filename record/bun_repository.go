package record

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunRecordRepository struct {
	repo repository.Repository[*Record]
}

func NewBunRecordRepository(db *bun.DB) *BunRecordRepository {
	return NewBunRecordRepositoryWithCache(db, nil, nil)
}

// NewBunRecordRepositoryWithCache constructs a RecordRepository with
// optional caching.
func NewBunRecordRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRecordRepository {
	base := NewRecordRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunRecordRepository{repo: wrapped}
}

func (r *BunRecordRepository) Create(ctx context.Context, record *Record) (*Record, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunRecordRepository) Update(ctx context.Context, record *Record) (*Record, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "record", id.String())
	}
	return result, nil
}

func (r *BunRecordRepository) GetBySlug(ctx context.Context, slug string) (*Record, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "record", slug)
	}
	return result, nil
}

func (r *BunRecordRepository) List(ctx context.Context) ([]*Record, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func (r *BunRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Record{ID: id})
}

type BunRecordTypeRepository struct {
	repo repository.Repository[*RecordType]
}

func NewBunRecordTypeRepository(db *bun.DB) *BunRecordTypeRepository {
	return NewBunRecordTypeRepositoryWithCache(db, nil, nil)
}

func NewBunRecordTypeRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRecordTypeRepository {
	base := NewRecordTypeRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunRecordTypeRepository{repo: wrapped}
}

func (r *BunRecordTypeRepository) Create(ctx context.Context, recordType *RecordType) (*RecordType, error) {
	created, err := r.repo.Create(ctx, recordType)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunRecordTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*RecordType, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "record_type", id.String())
	}
	return result, nil
}

func (r *BunRecordTypeRepository) GetByName(ctx context.Context, name string) (*RecordType, error) {
	result, err := r.repo.GetByIdentifier(ctx, name)
	if err != nil {
		return nil, mapRepositoryError(err, "record_type", name)
	}
	return result, nil
}

type BunLocaleRepository struct {
	repo repository.Repository[*Locale]
}

func NewBunLocaleRepository(db *bun.DB) *BunLocaleRepository {
	return NewBunLocaleRepositoryWithCache(db, nil, nil)
}

func NewBunLocaleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunLocaleRepository {
	base := NewLocaleRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunLocaleRepository{repo: wrapped}
}

func (r *BunLocaleRepository) Create(ctx context.Context, locale *Locale) (*Locale, error) {
	created, err := r.repo.Create(ctx, locale)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunLocaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*Locale, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "locale", id.String())
	}
	return result, nil
}

func (r *BunLocaleRepository) GetByCode(ctx context.Context, code string) (*Locale, error) {
	result, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "locale", code)
	}
	return result, nil
}

func (r *BunLocaleRepository) List(ctx context.Context) ([]*Locale, error) {
	locales, _, err := r.repo.List(ctx)
	return locales, err
}

type BunTranslationRepository struct {
	repo repository.Repository[*Translation]
}

func NewBunTranslationRepository(db *bun.DB) *BunTranslationRepository {
	return NewBunTranslationRepositoryWithCache(db, nil, nil)
}

func NewBunTranslationRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunTranslationRepository {
	base := NewTranslationRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunTranslationRepository{repo: wrapped}
}

// Upsert inserts the side row or updates the existing row for the same
// (record, locale) pair. Callers derive deterministic ids from that pair so
// the id lookup is sufficient.
func (r *BunTranslationRepository) Upsert(ctx context.Context, translation *Translation) (*Translation, error) {
	existing, err := r.repo.GetByID(ctx, translation.ID.String())
	if err == nil && existing != nil {
		updated, err := r.repo.Update(ctx, translation)
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	created, err := r.repo.Create(ctx, translation)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunTranslationRepository) GetByRecordAndLocale(ctx context.Context, recordID, localeID uuid.UUID) (*Translation, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.record_id = ?", recordID).
				Where("?TableAlias.locale_id = ?", localeID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "record_translation", Key: fmt.Sprintf("%s:%s", recordID, localeID)}
	}
	return records[0], nil
}

func (r *BunTranslationRepository) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*Translation, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.record_id = ?", recordID)
		}),
	)
	return records, err
}

func (r *BunTranslationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Translation{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
