package db_models

import "github.com/google/uuid"

// SiteConfig rows are key/value pairs edited from the back office
// (headline, marquee text, social links, analytics ids).
type SiteConfig struct {
	BaseModel
	Key   string `gorm:"uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

type Banner struct {
	BaseModel
	ImageURL string `gorm:"not null"`
	LinkURL  string
	Position string `gorm:"index"` // "hero" | "strip" | ...
	IsActive bool   `gorm:"index;default:true"`
}

type GalleryImage struct {
	BaseModel
	ImageURL  string `gorm:"not null"`
	Caption   string
	SortOrder int `gorm:"default:0"`
}

// HomepageSection is a named slot on the landing page with an ordered
// product assignment.
type HomepageSection struct {
	BaseModel
	Slot  string `gorm:"uniqueIndex;not null"`
	Title string

	Products []HomepageProduct `gorm:"foreignKey:SectionID"`
}

type HomepageProduct struct {
	BaseModel
	SectionID   uuid.UUID `gorm:"index;not null"`
	ProductID   uuid.UUID `gorm:"not null"`
	ProductType string    // "font" | "bundle"
	SortOrder   int       `gorm:"default:0"`
}
