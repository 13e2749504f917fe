package db_models

type Post struct {
	BaseModel
	Title      string `gorm:"not null"`
	Slug       string `gorm:"uniqueIndex;not null"`
	Category   string `gorm:"index"`
	Excerpt    string
	Body       string `gorm:"type:text"`
	CoverImage string
	Published  bool `gorm:"index;default:true"`
}
