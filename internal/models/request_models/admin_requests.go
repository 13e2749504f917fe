package request_models

import "github.com/google/uuid"

type PartnerRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url"`
	Subheadline string `json:"subheadline" binding:"max=200"`
}

type BrandRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	LogoURL string `json:"logo_url" binding:"omitempty,url"`
}

type LicenseRequest struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	Description    string   `json:"description"`
	FontPrice      float64  `json:"font_price" binding:"gte=0"`
	BundlePrice    float64  `json:"bundle_price" binding:"gte=0"`
	AllowedUses    []string `json:"allowed_uses"`
	DisallowedUses []string `json:"disallowed_uses"`
}

type DiscountRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=100"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
}

type BannerRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
	LinkURL  string `json:"link_url" binding:"omitempty,url"`
	Position string `json:"position" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type GalleryImageRequest struct {
	ImageURL  string `json:"image_url" binding:"required,url"`
	Caption   string `json:"caption" binding:"max=200"`
	SortOrder int    `json:"sort_order"`
}

type PostRequest struct {
	Title      string `json:"title" binding:"required,min=2,max=200"`
	Category   string `json:"category"`
	Excerpt    string `json:"excerpt" binding:"max=500"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"omitempty,url"`
	Published  *bool  `json:"published"`
}

type SiteConfigRequest struct {
	Entries map[string]string `json:"entries" binding:"required"`
}

type HomepageSectionRequest struct {
	Title    string                   `json:"title" binding:"max=100"`
	Products []HomepageProductRequest `json:"products" binding:"dive"`
}

type HomepageProductRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ProductType string    `json:"product_type" binding:"required,oneof=font bundle"`
	SortOrder   int       `json:"sort_order"`
}

type ProductRequest struct {
	Name          string            `json:"name" binding:"required,min=2,max=200"`
	Price         float64           `json:"price" binding:"gte=0"`
	Category      string            `json:"category"`
	PreviewImages []string          `json:"preview_images"`
	StaffPick     *bool             `json:"staff_pick"`
	Tags          []string          `json:"tags"`
	StyleTags     []string          `json:"style_tags"`
	PartnerID     *uuid.UUID        `json:"partner_id"`
	DiscountID    *uuid.UUID        `json:"discount_id"`
	Files         map[string]string `json:"files"`
}
