package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Font struct {
	BaseModel
	Name     string  `gorm:"not null"`
	Slug     string  `gorm:"uniqueIndex;not null"`
	Price    float64 `gorm:"not null"`
	Category string  `gorm:"index"`

	// Ordered preview image URLs; the first entry is the card image.
	PreviewImages pq.StringArray `gorm:"type:text[]"`

	StaffPick  bool  `gorm:"index;default:false"`
	Popularity int64 `gorm:"default:0"`

	Tags      pq.StringArray `gorm:"type:text[]"`
	StyleTags pq.StringArray `gorm:"type:text[]"`

	PartnerID  *uuid.UUID `gorm:"index"`
	DiscountID *uuid.UUID `gorm:"index"`

	// Per-style downloadable asset manifest, e.g. {"Regular": "https://...zip"}.
	Files datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Partner  *Partner  `gorm:"foreignKey:PartnerID"`
	Discount *Discount `gorm:"foreignKey:DiscountID"`
}

type Bundle struct {
	BaseModel
	Name     string  `gorm:"not null"`
	Slug     string  `gorm:"uniqueIndex;not null"`
	Price    float64 `gorm:"not null"`
	Category string  `gorm:"index"`

	PreviewImages pq.StringArray `gorm:"type:text[]"`

	StaffPick  bool  `gorm:"index;default:false"`
	Popularity int64 `gorm:"default:0"`

	Tags      pq.StringArray `gorm:"type:text[]"`
	StyleTags pq.StringArray `gorm:"type:text[]"`

	PartnerID  *uuid.UUID `gorm:"index"`
	DiscountID *uuid.UUID `gorm:"index"`

	// Font slugs included in the bundle plus their asset manifests.
	Files datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Partner  *Partner  `gorm:"foreignKey:PartnerID"`
	Discount *Discount `gorm:"foreignKey:DiscountID"`
}
