package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

type LicenseRepository interface {
	GetAll(ctx context.Context) ([]db_models.License, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.License, error)
	Create(ctx context.Context, license *db_models.License) (uuid.UUID, error)
	Update(ctx context.Context, license *db_models.License) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type licenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) LicenseRepository {
	return &licenseRepository{db: db}
}

func (r *licenseRepository) GetAll(ctx context.Context) ([]db_models.License, error) {
	var licenses []db_models.License
	if err := r.db.WithContext(ctx).Order("font_price ASC").Find(&licenses).Error; err != nil {
		return nil, err
	}
	return licenses, nil
}

func (r *licenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.License, error) {
	var license db_models.License
	err := r.db.WithContext(ctx).First(&license, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &license, nil
}

func (r *licenseRepository) Create(ctx context.Context, license *db_models.License) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(license).Error; err != nil {
		return uuid.Nil, err
	}
	return license.ID, nil
}

func (r *licenseRepository) Update(ctx context.Context, license *db_models.License) error {
	result := r.db.WithContext(ctx).Save(license)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *licenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.License{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

type DiscountRepository interface {
	GetAll(ctx context.Context) ([]db_models.Discount, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Discount, error)
	Create(ctx context.Context, discount *db_models.Discount) (uuid.UUID, error)
	Update(ctx context.Context, discount *db_models.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) GetAll(ctx context.Context) ([]db_models.Discount, error) {
	var discounts []db_models.Discount
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *discountRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Discount, error) {
	var discount db_models.Discount
	err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) Create(ctx context.Context, discount *db_models.Discount) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(discount).Error; err != nil {
		return uuid.Nil, err
	}
	return discount.ID, nil
}

func (r *discountRepository) Update(ctx context.Context, discount *db_models.Discount) error {
	result := r.db.WithContext(ctx).Save(discount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Discount{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
