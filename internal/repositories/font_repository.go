package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

type FontRepository interface {
	List(ctx context.Context, q CatalogQuery) ([]db_models.Font, int64, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Font, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Font, error)
	Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]db_models.Font, error)
	StaffPicks(ctx context.Context, limit int) ([]db_models.Font, error)
	Popular(ctx context.Context, limit int) ([]db_models.Font, error)
	All(ctx context.Context) ([]db_models.Font, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Font, error)

	Create(ctx context.Context, font *db_models.Font) (uuid.UUID, error)
	Update(ctx context.Context, font *db_models.Font) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementPopularity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type fontRepository struct {
	db *gorm.DB
}

func NewFontRepository(db *gorm.DB) FontRepository {
	return &fontRepository{db: db}
}

func (r *fontRepository) List(ctx context.Context, q CatalogQuery) ([]db_models.Font, int64, error) {
	var count int64
	if err := applyCatalogQuery(r.db.WithContext(ctx).Model(&db_models.Font{}), q).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	scope := applyCatalogQuery(r.db.WithContext(ctx).Model(&db_models.Font{}), q)
	var fonts []db_models.Font
	err := applyCatalogPage(applyCatalogOrder(scope, q.Sort), q.Page).
		Preload("Partner").
		Preload("Discount").
		Find(&fonts).Error
	if err != nil {
		return nil, 0, err
	}
	return fonts, count, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers return a nil model and nil error when no row matches.
// ────────────────────────────────────────────────────────────────

func (r *fontRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Font, error) {
	var font db_models.Font
	err := r.db.WithContext(ctx).
		Preload("Partner").
		Preload("Discount").
		First(&font, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &font, nil
}

func (r *fontRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Font, error) {
	var font db_models.Font
	err := r.db.WithContext(ctx).
		Preload("Discount").
		First(&font, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &font, nil
}

func (r *fontRepository) Related(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]db_models.Font, error) {
	var fonts []db_models.Font
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Where("category = ? AND id <> ?", category, exclude).
		Order("created_at DESC").
		Limit(limit).
		Find(&fonts).Error
	if err != nil {
		return nil, err
	}
	return fonts, nil
}

func (r *fontRepository) StaffPicks(ctx context.Context, limit int) ([]db_models.Font, error) {
	var fonts []db_models.Font
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Where("staff_pick = TRUE").
		Order("created_at DESC").
		Limit(limit).
		Find(&fonts).Error
	if err != nil {
		return nil, err
	}
	return fonts, nil
}

func (r *fontRepository) Popular(ctx context.Context, limit int) ([]db_models.Font, error) {
	var fonts []db_models.Font
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Order("popularity DESC, created_at DESC").
		Limit(limit).
		Find(&fonts).Error
	if err != nil {
		return nil, err
	}
	return fonts, nil
}

func (r *fontRepository) All(ctx context.Context) ([]db_models.Font, error) {
	var fonts []db_models.Font
	if err := r.db.WithContext(ctx).Preload("Discount").Find(&fonts).Error; err != nil {
		return nil, err
	}
	return fonts, nil
}

func (r *fontRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Font, error) {
	var fonts []db_models.Font
	if len(ids) == 0 {
		return fonts, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Discount").
		Where("id IN ?", ids).
		Find(&fonts).Error
	if err != nil {
		return nil, err
	}
	return fonts, nil
}

func (r *fontRepository) Create(ctx context.Context, font *db_models.Font) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(font).Error; err != nil {
		return uuid.Nil, err
	}
	return font.ID, nil
}

func (r *fontRepository) Update(ctx context.Context, font *db_models.Font) error {
	result := r.db.WithContext(ctx).Save(font)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *fontRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Font{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// IncrementPopularity runs inside the capture transaction when tx is non-nil.
func (r *fontRepository) IncrementPopularity(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Model(&db_models.Font{}).
		Where("id = ?", id).
		UpdateColumn("popularity", gorm.Expr("popularity + 1")).Error
}
