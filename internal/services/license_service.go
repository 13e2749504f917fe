package services

import (
	"context"

	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type LicenseServiceInterface interface {
	GetAll(ctx context.Context) ([]db_models.License, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.License, error)
	Create(ctx context.Context, req request_models.LicenseRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.LicenseRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LicenseService struct {
	licenseRepo repositories.LicenseRepository
}

func NewLicenseService(licenseRepo repositories.LicenseRepository) LicenseServiceInterface {
	return &LicenseService{licenseRepo: licenseRepo}
}

func (s *LicenseService) GetAll(ctx context.Context) ([]db_models.License, error) {
	licenses, err := s.licenseRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return licenses, nil
}

func (s *LicenseService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.License, error) {
	license, err := s.licenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if license == nil {
		return nil, utils.ErrRecordNotFound
	}
	return license, nil
}

func (s *LicenseService) Create(ctx context.Context, req request_models.LicenseRequest) (uuid.UUID, error) {
	license := &db_models.License{
		Name:           req.Name,
		Slug:           utils.Slugify(req.Name),
		Description:    req.Description,
		FontPrice:      req.FontPrice,
		BundlePrice:    req.BundlePrice,
		AllowedUses:    req.AllowedUses,
		DisallowedUses: req.DisallowedUses,
	}
	id, err := s.licenseRepo.Create(ctx, license)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *LicenseService) Update(ctx context.Context, id uuid.UUID, req request_models.LicenseRequest) error {
	license, err := s.licenseRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if license == nil {
		return utils.ErrRecordNotFound
	}

	license.Name = req.Name
	license.Description = req.Description
	license.FontPrice = req.FontPrice
	license.BundlePrice = req.BundlePrice
	license.AllowedUses = req.AllowedUses
	license.DisallowedUses = req.DisallowedUses

	if err := s.licenseRepo.Update(ctx, license); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LicenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.licenseRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

type DiscountServiceInterface interface {
	GetAll(ctx context.Context) ([]db_models.Discount, error)
	Create(ctx context.Context, req request_models.DiscountRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.DiscountRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiscountService struct {
	discountRepo repositories.DiscountRepository
}

func NewDiscountService(discountRepo repositories.DiscountRepository) DiscountServiceInterface {
	return &DiscountService{discountRepo: discountRepo}
}

func (s *DiscountService) GetAll(ctx context.Context) ([]db_models.Discount, error) {
	discounts, err := s.discountRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return discounts, nil
}

func (s *DiscountService) Create(ctx context.Context, req request_models.DiscountRequest) (uuid.UUID, error) {
	id, err := s.discountRepo.Create(ctx, &db_models.Discount{
		Name:       req.Name,
		Percentage: req.Percentage,
	})
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *DiscountService) Update(ctx context.Context, id uuid.UUID, req request_models.DiscountRequest) error {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if discount == nil {
		return utils.ErrRecordNotFound
	}

	discount.Name = req.Name
	discount.Percentage = req.Percentage

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *DiscountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.discountRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
