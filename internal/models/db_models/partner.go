package db_models

type Partner struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	LogoURL     string
	Subheadline string
}

type Brand struct {
	BaseModel
	Name    string `gorm:"not null"`
	LogoURL string
}
