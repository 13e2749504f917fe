package repositories

import (
	"gorm.io/gorm"
)

// CatalogPageSize is the fixed storefront grid size.
const CatalogPageSize = 32

// HousePartnerSlug is the historical sentinel meaning "no partner": house
// products are stored with partner_id IS NULL, and existing links depend on
// this convention.
const HousePartnerSlug = "stylishtype"

const (
	SortNewest    = "Newest"
	SortOldest    = "Oldest"
	SortAToZ      = "A to Z"
	SortZToA      = "Z to A"
	SortPopular   = "Popular"
	SortStaffPick = "Staff Pick"
)

type CatalogQuery struct {
	Search      string
	Category    string
	PartnerSlug string
	Tag         string
	Sort        string
	Page        int // 1-based
}

// applyCatalogQuery narrows a font or bundle query by the storefront filters.
// Ordering and paging are applied separately so the same scope can feed the
// count query.
func applyCatalogQuery(db *gorm.DB, q CatalogQuery) *gorm.DB {
	if q.Search != "" {
		db = db.Where("name ILIKE ?", "%"+q.Search+"%")
	}
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.PartnerSlug != "" {
		if q.PartnerSlug == HousePartnerSlug {
			db = db.Where("partner_id IS NULL")
		} else {
			db = db.Where("partner_id IN (SELECT id FROM partners WHERE slug = ? AND deleted_at IS NULL)", q.PartnerSlug)
		}
	}
	if q.Tag != "" {
		db = db.Where("? = ANY(tags) OR ? = ANY(style_tags)", q.Tag, q.Tag)
	}
	if q.Sort == SortStaffPick {
		db = db.Where("staff_pick = TRUE")
	}
	return db
}

// applyCatalogOrder maps the storefront sort keys onto order-by clauses.
// Unknown keys fall back to Newest.
func applyCatalogOrder(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case SortOldest:
		return db.Order("created_at ASC")
	case SortAToZ:
		return db.Order("name ASC")
	case SortZToA:
		return db.Order("name DESC")
	case SortPopular:
		return db.Order("popularity DESC, created_at DESC")
	default: // Newest, Staff Pick and anything unrecognised
		return db.Order("created_at DESC")
	}
}

func applyCatalogPage(db *gorm.DB, page int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	return db.Offset((page - 1) * CatalogPageSize).Limit(CatalogPageSize)
}

// TotalPages converts a row count into a 1-based page count for the fixed
// catalog page size.
func TotalPages(count int64, pageSize int) int {
	if count <= 0 {
		return 0
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}
