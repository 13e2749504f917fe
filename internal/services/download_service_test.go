package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"stylishtype/internal/models/db_models"
	"stylishtype/pkg/utils"
)

func TestDownloadEntitlement(t *testing.T) {
	buyer := uuid.New()
	subscriber := uuid.New()
	stranger := uuid.New()

	font := db_models.Font{
		Name: "Grotesk One", Slug: "grotesk-one", Price: 40,
		Files: datatypes.JSON(`{"Regular":"https://cdn.example.com/grotesk-regular.otf"}`),
	}
	font.ID = uuid.New()

	purchase := db_models.Order{
		AccountID: buyer,
		Status:    db_models.OrderStatusCompleted,
		Items:     []db_models.OrderItem{{ProductID: font.ID, ProductType: "font"}},
	}
	purchase.ID = uuid.New()

	sub := db_models.Subscription{
		AccountID: subscriber,
		Status:    db_models.SubStatusActive,
		StartsAt:  time.Now().Unix(),
		EndsAt:    time.Now().AddDate(0, 1, 0).Unix(),
	}
	sub.ID = uuid.New()

	svc := NewDownloadService(
		&stubFontRepo{fonts: []db_models.Font{font}},
		&stubBundleRepo{},
		&stubOrderRepo{orders: []db_models.Order{purchase}},
		&stubSubscriptionRepo{subs: []db_models.Subscription{sub}},
	)

	files, err := svc.FontFiles(context.Background(), buyer, font.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/grotesk-regular.otf", files["Regular"])

	files, err = svc.FontFiles(context.Background(), subscriber, font.ID)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = svc.FontFiles(context.Background(), stranger, font.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.FontFiles(context.Background(), buyer, uuid.New())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}
