package services

import (
	"context"

	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type PartnerServiceInterface interface {
	GetAll(ctx context.Context) ([]db_models.Partner, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Partner, error)
	Create(ctx context.Context, req request_models.PartnerRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.PartnerRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PartnerService struct {
	partnerRepo repositories.PartnerRepository
}

func NewPartnerService(partnerRepo repositories.PartnerRepository) PartnerServiceInterface {
	return &PartnerService{partnerRepo: partnerRepo}
}

func (s *PartnerService) GetAll(ctx context.Context) ([]db_models.Partner, error) {
	partners, err := s.partnerRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return partners, nil
}

func (s *PartnerService) GetBySlug(ctx context.Context, slug string) (*db_models.Partner, error) {
	partner, err := s.partnerRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if partner == nil {
		return nil, utils.ErrRecordNotFound
	}
	return partner, nil
}

func (s *PartnerService) Create(ctx context.Context, req request_models.PartnerRequest) (uuid.UUID, error) {
	slug := utils.Slugify(req.Name)

	existing, err := s.partnerRepo.GetBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, utils.ErrSlugAlreadyExists
	}

	partner := &db_models.Partner{
		Name:        req.Name,
		Slug:        slug,
		LogoURL:     req.LogoURL,
		Subheadline: req.Subheadline,
	}
	id, err := s.partnerRepo.Create(ctx, partner)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, req request_models.PartnerRequest) error {
	partner, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if partner == nil {
		return utils.ErrRecordNotFound
	}

	partner.Name = req.Name
	partner.LogoURL = req.LogoURL
	partner.Subheadline = req.Subheadline

	if err := s.partnerRepo.Update(ctx, partner); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PartnerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

type BrandServiceInterface interface {
	GetAll(ctx context.Context) ([]db_models.Brand, error)
	Create(ctx context.Context, req request_models.BrandRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.BrandRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BrandService struct {
	brandRepo repositories.BrandRepository
}

func NewBrandService(brandRepo repositories.BrandRepository) BrandServiceInterface {
	return &BrandService{brandRepo: brandRepo}
}

func (s *BrandService) GetAll(ctx context.Context) ([]db_models.Brand, error) {
	brands, err := s.brandRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return brands, nil
}

func (s *BrandService) Create(ctx context.Context, req request_models.BrandRequest) (uuid.UUID, error) {
	id, err := s.brandRepo.Create(ctx, &db_models.Brand{Name: req.Name, LogoURL: req.LogoURL})
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *BrandService) Update(ctx context.Context, id uuid.UUID, req request_models.BrandRequest) error {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if brand == nil {
		return utils.ErrRecordNotFound
	}

	brand.Name = req.Name
	brand.LogoURL = req.LogoURL

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.brandRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
