package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

// ProductAdminService is the back-office write side of the catalog; the public
// read side lives on CatalogService.
type ProductAdminServiceInterface interface {
	CreateFont(ctx context.Context, req request_models.ProductRequest) (uuid.UUID, error)
	UpdateFont(ctx context.Context, id uuid.UUID, req request_models.ProductRequest) error
	DeleteFont(ctx context.Context, id uuid.UUID) error

	CreateBundle(ctx context.Context, req request_models.ProductRequest) (uuid.UUID, error)
	UpdateBundle(ctx context.Context, id uuid.UUID, req request_models.ProductRequest) error
	DeleteBundle(ctx context.Context, id uuid.UUID) error
}

type ProductAdminService struct {
	fontRepo   repositories.FontRepository
	bundleRepo repositories.BundleRepository
}

func NewProductAdminService(fontRepo repositories.FontRepository, bundleRepo repositories.BundleRepository) ProductAdminServiceInterface {
	return &ProductAdminService{fontRepo: fontRepo, bundleRepo: bundleRepo}
}

func filesJSON(files map[string]string) datatypes.JSON {
	if files == nil {
		return nil
	}
	encoded, err := json.Marshal(files)
	if err != nil {
		return nil
	}
	return encoded
}

func (s *ProductAdminService) applyFont(font *db_models.Font, req request_models.ProductRequest) {
	font.Name = req.Name
	font.Price = req.Price
	font.Category = req.Category
	font.PreviewImages = req.PreviewImages
	if req.StaffPick != nil {
		font.StaffPick = *req.StaffPick
	}
	font.Tags = req.Tags
	font.StyleTags = req.StyleTags
	font.PartnerID = req.PartnerID
	font.DiscountID = req.DiscountID
	if encoded := filesJSON(req.Files); encoded != nil {
		font.Files = encoded
	}
}

func (s *ProductAdminService) applyBundle(bundle *db_models.Bundle, req request_models.ProductRequest) {
	bundle.Name = req.Name
	bundle.Price = req.Price
	bundle.Category = req.Category
	bundle.PreviewImages = req.PreviewImages
	if req.StaffPick != nil {
		bundle.StaffPick = *req.StaffPick
	}
	bundle.Tags = req.Tags
	bundle.StyleTags = req.StyleTags
	bundle.PartnerID = req.PartnerID
	bundle.DiscountID = req.DiscountID
	if encoded := filesJSON(req.Files); encoded != nil {
		bundle.Files = encoded
	}
}

func (s *ProductAdminService) CreateFont(ctx context.Context, req request_models.ProductRequest) (uuid.UUID, error) {
	slug := utils.Slugify(req.Name)
	existing, err := s.fontRepo.GetBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, utils.ErrSlugAlreadyExists
	}

	font := &db_models.Font{Slug: slug}
	s.applyFont(font, req)

	id, err := s.fontRepo.Create(ctx, font)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *ProductAdminService) UpdateFont(ctx context.Context, id uuid.UUID, req request_models.ProductRequest) error {
	font, err := s.fontRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if font == nil {
		return utils.ErrRecordNotFound
	}

	s.applyFont(font, req)
	if err := s.fontRepo.Update(ctx, font); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProductAdminService) DeleteFont(ctx context.Context, id uuid.UUID) error {
	if err := s.fontRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProductAdminService) CreateBundle(ctx context.Context, req request_models.ProductRequest) (uuid.UUID, error) {
	slug := utils.Slugify(req.Name)
	existing, err := s.bundleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, utils.ErrSlugAlreadyExists
	}

	bundle := &db_models.Bundle{Slug: slug}
	s.applyBundle(bundle, req)

	id, err := s.bundleRepo.Create(ctx, bundle)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *ProductAdminService) UpdateBundle(ctx context.Context, id uuid.UUID, req request_models.ProductRequest) error {
	bundle, err := s.bundleRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if bundle == nil {
		return utils.ErrRecordNotFound
	}

	s.applyBundle(bundle, req)
	if err := s.bundleRepo.Update(ctx, bundle); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProductAdminService) DeleteBundle(ctx context.Context, id uuid.UUID) error {
	if err := s.bundleRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
