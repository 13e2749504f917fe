package response_models

import "github.com/google/uuid"

// ProductResponse is the shared card view model for fonts and bundles.
// Price is the discounted price; OriginalPrice is present only when a
// discount applied, for the strikethrough rendering.
type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Type          string    `json:"type"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	DiscountName  string    `json:"discountName,omitempty"`
	Category      string    `json:"category,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	StaffPick     bool      `json:"staffPick"`
	PartnerName   string    `json:"partnerName,omitempty"`
	PartnerSlug   string    `json:"partnerSlug,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
}

type ProductListResponse struct {
	Fonts      []ProductResponse `json:"fonts,omitempty"`
	Bundles    []ProductResponse `json:"bundles,omitempty"`
	TotalPages int               `json:"totalPages"`
}

type ProductDetailResponse struct {
	ProductResponse
	PreviewImages []string          `json:"previewImages"`
	StyleTags     []string          `json:"styleTags,omitempty"`
	Related       []ProductResponse `json:"related"`
}

type HomeResponse struct {
	StaffPicks []ProductResponse    `json:"staffPicks"`
	Marquee    []ProductResponse    `json:"marquee"`
	Posts      []PostResponse       `json:"latestPosts"`
	Banners    []BannerResponse     `json:"banners"`
	Sections   []HomepageSectionRes `json:"sections"`
}

type HomepageSectionRes struct {
	Slot     string            `json:"slot"`
	Title    string            `json:"title"`
	Products []ProductResponse `json:"products"`
}

type BannerResponse struct {
	ID       uuid.UUID `json:"id"`
	ImageURL string    `json:"imageUrl"`
	LinkURL  string    `json:"linkUrl,omitempty"`
	Position string    `json:"position"`
}
