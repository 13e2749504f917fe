package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

type PartnerRepository interface {
	GetAll(ctx context.Context) ([]db_models.Partner, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Partner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Partner, error)
	Create(ctx context.Context, partner *db_models.Partner) (uuid.UUID, error)
	Update(ctx context.Context, partner *db_models.Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type partnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) GetAll(ctx context.Context) ([]db_models.Partner, error) {
	var partners []db_models.Partner
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *partnerRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Partner, error) {
	var partner db_models.Partner
	err := r.db.WithContext(ctx).First(&partner, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Partner, error) {
	var partner db_models.Partner
	err := r.db.WithContext(ctx).First(&partner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

func (r *partnerRepository) Create(ctx context.Context, partner *db_models.Partner) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(partner).Error; err != nil {
		return uuid.Nil, err
	}
	return partner.ID, nil
}

func (r *partnerRepository) Update(ctx context.Context, partner *db_models.Partner) error {
	result := r.db.WithContext(ctx).Save(partner)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *partnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Partner{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

type BrandRepository interface {
	GetAll(ctx context.Context) ([]db_models.Brand, error)
	Create(ctx context.Context, brand *db_models.Brand) (uuid.UUID, error)
	Update(ctx context.Context, brand *db_models.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Brand, error)
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) GetAll(ctx context.Context) ([]db_models.Brand, error) {
	var brands []db_models.Brand
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Brand, error) {
	var brand db_models.Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) Create(ctx context.Context, brand *db_models.Brand) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		return uuid.Nil, err
	}
	return brand.ID, nil
}

func (r *brandRepository) Update(ctx context.Context, brand *db_models.Brand) error {
	result := r.db.WithContext(ctx).Save(brand)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Brand{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
