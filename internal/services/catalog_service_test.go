package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

func newCatalogFixture() (CatalogServiceInterface, *stubFontRepo) {
	sale := &db_models.Discount{Name: "Sale", Percentage: 25}
	font := db_models.Font{
		Name: "Grotesk One", Slug: "grotesk-one", Price: 40,
		Category: "sans-serif", Discount: sale,
		PreviewImages: []string{"https://cdn.example.com/grotesk.png"},
	}
	font.ID = uuid.New()

	fontRepo := &stubFontRepo{fonts: []db_models.Font{font}, listCount: 1}
	svc := NewCatalogService(fontRepo, &stubBundleRepo{}, &stubPostRepo{}, nil)
	return svc, fontRepo
}

func TestListFontsNormalizesPage(t *testing.T) {
	svc, fontRepo := newCatalogFixture()

	_, err := svc.ListFonts(context.Background(), repositories.CatalogQuery{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, fontRepo.listedQuery.Page)

	_, err = svc.ListFonts(context.Background(), repositories.CatalogQuery{Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, fontRepo.listedQuery.Page)
}

func TestListFontsTotalPages(t *testing.T) {
	svc, fontRepo := newCatalogFixture()
	fontRepo.listCount = 33 // one over a full grid page

	res, err := svc.ListFonts(context.Background(), repositories.CatalogQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPages)
}

func TestFontDetailAppliesDiscount(t *testing.T) {
	svc, _ := newCatalogFixture()

	res, err := svc.FontDetail(context.Background(), "grotesk-one")
	require.NoError(t, err)

	assert.Equal(t, 30.0, res.Price)
	require.NotNil(t, res.OriginalPrice)
	assert.Equal(t, 40.0, *res.OriginalPrice)
	assert.Equal(t, "Sale", res.DiscountName)
	assert.Equal(t, "https://cdn.example.com/grotesk.png", res.ImageURL)
}

func TestFontDetailUnknownSlug(t *testing.T) {
	svc, _ := newCatalogFixture()

	_, err := svc.FontDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}
