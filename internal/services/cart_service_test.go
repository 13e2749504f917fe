package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/pkg/utils"
)

func newCartFixture() (CartServiceInterface, *stubFontRepo, *stubLicenseRepo) {
	license := db_models.License{Name: "Desktop", FontPrice: 5}
	license.ID = uuid.New()

	discount := &db_models.Discount{Name: "Summer Sale", Percentage: 50}
	font := db_models.Font{Name: "Grotesk One", Slug: "grotesk-one", Price: 35, Discount: discount}
	font.ID = uuid.New()

	fontRepo := &stubFontRepo{fonts: []db_models.Font{font}}
	licenseRepo := &stubLicenseRepo{licenses: []db_models.License{license}}
	bundleRepo := &stubBundleRepo{}

	svc := NewCartService(newStubCartRepo(), fontRepo, bundleRepo, licenseRepo)
	return svc, fontRepo, licenseRepo
}

func TestAddItemComputesDiscountedPrice(t *testing.T) {
	svc, fontRepo, licenseRepo := newCartFixture()
	owner := CartOwner{AnonToken: "guest-token"}

	res, err := svc.AddItem(context.Background(), owner, request_models.AddCartItemRequest{
		ProductID:   fontRepo.fonts[0].ID,
		ProductType: "font",
		LicenseID:   licenseRepo.licenses[0].ID,
	})
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	// (35 base + 5 license) with 50% off
	assert.Equal(t, 20.0, res.Items[0].Price)
	require.NotNil(t, res.Items[0].OriginalPrice)
	assert.Equal(t, 40.0, *res.Items[0].OriginalPrice)
	assert.Equal(t, 20.0, res.Total)
	assert.Equal(t, 40.0, res.OriginalTotal)
	assert.Equal(t, 1, res.Count)
}

func TestAddItemRejectsDuplicateProductLicensePair(t *testing.T) {
	svc, fontRepo, licenseRepo := newCartFixture()
	owner := CartOwner{AnonToken: "guest-token"}

	req := request_models.AddCartItemRequest{
		ProductID:   fontRepo.fonts[0].ID,
		ProductType: "font",
		LicenseID:   licenseRepo.licenses[0].ID,
	}

	_, err := svc.AddItem(context.Background(), owner, req)
	require.NoError(t, err)

	res, err := svc.AddItem(context.Background(), owner, req)
	assert.ErrorIs(t, err, utils.ErrItemAlreadyInCart)
	// the cart comes back unchanged alongside the conflict
	assert.Len(t, res.Items, 1)
}

func TestAddItemUnknownLicense(t *testing.T) {
	svc, fontRepo, _ := newCartFixture()
	owner := CartOwner{AnonToken: "guest-token"}

	_, err := svc.AddItem(context.Background(), owner, request_models.AddCartItemRequest{
		ProductID:   fontRepo.fonts[0].ID,
		ProductType: "font",
		LicenseID:   uuid.New(),
	})
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc, fontRepo, licenseRepo := newCartFixture()
	owner := CartOwner{AnonToken: "guest-token"}

	_, err := svc.AddItem(context.Background(), owner, request_models.AddCartItemRequest{
		ProductID:   fontRepo.fonts[0].ID,
		ProductType: "font",
		LicenseID:   licenseRepo.licenses[0].ID,
	})
	require.NoError(t, err)

	key := CartItemKey(fontRepo.fonts[0].ID, licenseRepo.licenses[0].ID)

	res, err := svc.RemoveItem(context.Background(), owner, key)
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	// removing the same key again still succeeds
	res, err = svc.RemoveItem(context.Background(), owner, key)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0.0, res.Total)
}

func TestGetForUnknownOwnerReturnsEmptyCart(t *testing.T) {
	svc, _, _ := newCartFixture()

	res, err := svc.Get(context.Background(), CartOwner{AnonToken: "never-seen"})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, 0.0, res.Total)
}

func TestAddItemIssuesAnonTokenForGuests(t *testing.T) {
	svc, fontRepo, licenseRepo := newCartFixture()

	res, err := svc.AddItem(context.Background(), CartOwner{}, request_models.AddCartItemRequest{
		ProductID:   fontRepo.fonts[0].ID,
		ProductType: "font",
		LicenseID:   licenseRepo.licenses[0].ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AnonToken)
}
