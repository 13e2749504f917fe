package services

import (
	"context"

	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type SiteServiceInterface interface {
	GetConfig(ctx context.Context) (map[string]string, error)
	UpsertConfig(ctx context.Context, req request_models.SiteConfigRequest) error

	ActiveBanners(ctx context.Context) ([]db_models.Banner, error)
	AllBanners(ctx context.Context) ([]db_models.Banner, error)
	CreateBanner(ctx context.Context, req request_models.BannerRequest) (uuid.UUID, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, req request_models.BannerRequest) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	GalleryImages(ctx context.Context) ([]db_models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, req request_models.GalleryImageRequest) (uuid.UUID, error)
	UpdateGalleryImage(ctx context.Context, id uuid.UUID, req request_models.GalleryImageRequest) error
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error

	SetHomepageSection(ctx context.Context, slot string, req request_models.HomepageSectionRequest) error
}

type SiteService struct {
	siteRepo repositories.SiteRepository
}

func NewSiteService(siteRepo repositories.SiteRepository) SiteServiceInterface {
	return &SiteService{siteRepo: siteRepo}
}

func (s *SiteService) GetConfig(ctx context.Context) (map[string]string, error) {
	entries, err := s.siteRepo.GetConfig(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	config := make(map[string]string, len(entries))
	for i := range entries {
		config[entries[i].Key] = entries[i].Value
	}
	return config, nil
}

func (s *SiteService) UpsertConfig(ctx context.Context, req request_models.SiteConfigRequest) error {
	if err := s.siteRepo.UpsertConfig(ctx, req.Entries); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SiteService) ActiveBanners(ctx context.Context) ([]db_models.Banner, error) {
	banners, err := s.siteRepo.ActiveBanners(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return banners, nil
}

func (s *SiteService) AllBanners(ctx context.Context) ([]db_models.Banner, error) {
	banners, err := s.siteRepo.AllBanners(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return banners, nil
}

func (s *SiteService) CreateBanner(ctx context.Context, req request_models.BannerRequest) (uuid.UUID, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	id, err := s.siteRepo.CreateBanner(ctx, &db_models.Banner{
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		IsActive: active,
	})
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *SiteService) UpdateBanner(ctx context.Context, id uuid.UUID, req request_models.BannerRequest) error {
	banner, err := s.siteRepo.GetBanner(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if banner == nil {
		return utils.ErrRecordNotFound
	}

	banner.ImageURL = req.ImageURL
	banner.LinkURL = req.LinkURL
	banner.Position = req.Position
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := s.siteRepo.UpdateBanner(ctx, banner); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SiteService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if err := s.siteRepo.DeleteBanner(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SiteService) GalleryImages(ctx context.Context) ([]db_models.GalleryImage, error) {
	images, err := s.siteRepo.GalleryImages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return images, nil
}

func (s *SiteService) CreateGalleryImage(ctx context.Context, req request_models.GalleryImageRequest) (uuid.UUID, error) {
	id, err := s.siteRepo.CreateGalleryImage(ctx, &db_models.GalleryImage{
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *SiteService) UpdateGalleryImage(ctx context.Context, id uuid.UUID, req request_models.GalleryImageRequest) error {
	image, err := s.siteRepo.GetGalleryImage(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if image == nil {
		return utils.ErrRecordNotFound
	}

	image.ImageURL = req.ImageURL
	image.Caption = req.Caption
	image.SortOrder = req.SortOrder

	if err := s.siteRepo.UpdateGalleryImage(ctx, image); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SiteService) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	if err := s.siteRepo.DeleteGalleryImage(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// SetHomepageSection creates the slot when it does not exist yet and replaces
// its product assignment otherwise.
func (s *SiteService) SetHomepageSection(ctx context.Context, slot string, req request_models.HomepageSectionRequest) error {
	section, err := s.siteRepo.GetSectionBySlot(ctx, slot)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if section == nil {
		section = &db_models.HomepageSection{Slot: slot}
	}
	section.Title = req.Title

	products := make([]db_models.HomepageProduct, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, db_models.HomepageProduct{
			ProductID:   p.ProductID,
			ProductType: p.ProductType,
			SortOrder:   p.SortOrder,
		})
	}

	if err := s.siteRepo.ReplaceSectionProducts(ctx, section, products); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
