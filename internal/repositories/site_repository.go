package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"stylishtype/internal/models/db_models"
)

type SiteRepository interface {
	GetConfig(ctx context.Context) ([]db_models.SiteConfig, error)
	UpsertConfig(ctx context.Context, entries map[string]string) error

	ActiveBanners(ctx context.Context) ([]db_models.Banner, error)
	AllBanners(ctx context.Context) ([]db_models.Banner, error)
	GetBanner(ctx context.Context, id uuid.UUID) (*db_models.Banner, error)
	CreateBanner(ctx context.Context, banner *db_models.Banner) (uuid.UUID, error)
	UpdateBanner(ctx context.Context, banner *db_models.Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	GalleryImages(ctx context.Context) ([]db_models.GalleryImage, error)
	GetGalleryImage(ctx context.Context, id uuid.UUID) (*db_models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, image *db_models.GalleryImage) (uuid.UUID, error)
	UpdateGalleryImage(ctx context.Context, image *db_models.GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error

	HomepageSections(ctx context.Context) ([]db_models.HomepageSection, error)
	GetSectionBySlot(ctx context.Context, slot string) (*db_models.HomepageSection, error)
	ReplaceSectionProducts(ctx context.Context, section *db_models.HomepageSection, products []db_models.HomepageProduct) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) GetConfig(ctx context.Context) ([]db_models.SiteConfig, error) {
	var entries []db_models.SiteConfig
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *siteRepository) UpsertConfig(ctx context.Context, entries map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			row := db_models.SiteConfig{Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *siteRepository) ActiveBanners(ctx context.Context) ([]db_models.Banner, error) {
	var banners []db_models.Banner
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("position ASC, created_at DESC").
		Find(&banners).Error
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *siteRepository) AllBanners(ctx context.Context) ([]db_models.Banner, error) {
	var banners []db_models.Banner
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *siteRepository) GetBanner(ctx context.Context, id uuid.UUID) (*db_models.Banner, error) {
	var banner db_models.Banner
	err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

func (r *siteRepository) CreateBanner(ctx context.Context, banner *db_models.Banner) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(banner).Error; err != nil {
		return uuid.Nil, err
	}
	return banner.ID, nil
}

func (r *siteRepository) UpdateBanner(ctx context.Context, banner *db_models.Banner) error {
	result := r.db.WithContext(ctx).Save(banner)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *siteRepository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Banner{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *siteRepository) GalleryImages(ctx context.Context) ([]db_models.GalleryImage, error) {
	var images []db_models.GalleryImage
	err := r.db.WithContext(ctx).Order("sort_order ASC, created_at DESC").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *siteRepository) GetGalleryImage(ctx context.Context, id uuid.UUID) (*db_models.GalleryImage, error) {
	var image db_models.GalleryImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *siteRepository) CreateGalleryImage(ctx context.Context, image *db_models.GalleryImage) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return uuid.Nil, err
	}
	return image.ID, nil
}

func (r *siteRepository) UpdateGalleryImage(ctx context.Context, image *db_models.GalleryImage) error {
	result := r.db.WithContext(ctx).Save(image)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *siteRepository) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.GalleryImage{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *siteRepository) HomepageSections(ctx context.Context) ([]db_models.HomepageSection, error) {
	var sections []db_models.HomepageSection
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("slot ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *siteRepository) GetSectionBySlot(ctx context.Context, slot string) (*db_models.HomepageSection, error) {
	var section db_models.HomepageSection
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&section, "slot = ?", slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &section, nil
}

// ReplaceSectionProducts swaps a slot's assignment in one transaction so the
// homepage never renders a half-updated section.
func (r *siteRepository) ReplaceSectionProducts(ctx context.Context, section *db_models.HomepageSection, products []db_models.HomepageProduct) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(section).Error; err != nil {
			return err
		}
		if err := tx.Where("section_id = ?", section.ID).
			Delete(&db_models.HomepageProduct{}).Error; err != nil {
			return err
		}
		for i := range products {
			products[i].SectionID = section.ID
		}
		if len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
}
