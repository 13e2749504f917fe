package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

type BundleRepository interface {
	List(ctx context.Context, q CatalogQuery) ([]db_models.Bundle, int64, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Bundle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Bundle, error)
	Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]db_models.Bundle, error)
	All(ctx context.Context) ([]db_models.Bundle, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Bundle, error)

	Create(ctx context.Context, bundle *db_models.Bundle) (uuid.UUID, error)
	Update(ctx context.Context, bundle *db_models.Bundle) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementPopularity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type bundleRepository struct {
	db *gorm.DB
}

func NewBundleRepository(db *gorm.DB) BundleRepository {
	return &bundleRepository{db: db}
}

func (r *bundleRepository) List(ctx context.Context, q CatalogQuery) ([]db_models.Bundle, int64, error) {
	var count int64
	if err := applyCatalogQuery(r.db.WithContext(ctx).Model(&db_models.Bundle{}), q).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	scope := applyCatalogQuery(r.db.WithContext(ctx).Model(&db_models.Bundle{}), q)
	var bundles []db_models.Bundle
	err := applyCatalogPage(applyCatalogOrder(scope, q.Sort), q.Page).
		Preload("Partner").
		Preload("Discount").
		Find(&bundles).Error
	if err != nil {
		return nil, 0, err
	}
	return bundles, count, nil
}

func (r *bundleRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Bundle, error) {
	var bundle db_models.Bundle
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Discount").
		First(&bundle, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bundle, nil
}

func (r *bundleRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Bundle, error) {
	var bundle db_models.Bundle
	err := r.db.WithContext(ctx).
		Preload("Discount").
		First(&bundle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bundle, nil
}

func (r *bundleRepository) Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]db_models.Bundle, error) {
	var bundles []db_models.Bundle
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Where("category = ? AND id <> ?", category, exclude).
		Order("created_at DESC").
		Limit(limit).
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *bundleRepository) All(ctx context.Context) ([]db_models.Bundle, error) {
	var bundles []db_models.Bundle
	if err := r.db.WithContext(ctx).Preload("Discount").Find(&bundles).Error; err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *bundleRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Bundle, error) {
	var bundles []db_models.Bundle
	if len(ids) == 0 {
		return bundles, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Where("id IN ?", ids).
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *bundleRepository) Create(ctx context.Context, bundle *db_models.Bundle) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(bundle).Error; err != nil {
		return uuid.Nil, err
	}
	return bundle.ID, nil
}

func (r *bundleRepository) Update(ctx context.Context, bundle *db_models.Bundle) error {
	result := r.db.WithContext(ctx).Save(bundle)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bundleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Bundle{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *bundleRepository) IncrementPopularity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Model(&db_models.Bundle{}).
		Where("id = ?", id).
		UpdateColumn("popularity", gorm.Expr("popularity + 1")).Error
}
