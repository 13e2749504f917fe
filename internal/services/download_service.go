package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type DownloadServiceInterface interface {
	FontFiles(ctx context.Context, accountID, fontID uuid.UUID) (map[string]string, error)
	BundleFiles(ctx context.Context, accountID, bundleID uuid.UUID) (map[string]string, error)
}

// DownloadService gates access to the per-style file manifests. An account is
// entitled to a product's files when it bought the product or holds an active
// subscription, which covers the whole library.
type DownloadService struct {
	fontRepo   repositories.FontRepository
	bundleRepo repositories.BundleRepository
	orderRepo  repositories.OrderRepository
	subRepo    repositories.SubscriptionRepository
}

func NewDownloadService(
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	orderRepo repositories.OrderRepository,
	subRepo repositories.SubscriptionRepository,
) DownloadServiceInterface {
	return &DownloadService{
		fontRepo:   fontRepo,
		bundleRepo: bundleRepo,
		orderRepo:  orderRepo,
		subRepo:    subRepo,
	}
}

func (s *DownloadService) entitled(ctx context.Context, accountID, productID uuid.UUID) (bool, error) {
	sub, err := s.subRepo.GetActiveByAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	if sub != nil {
		return true, nil
	}
	return s.orderRepo.HasPurchased(ctx, accountID, productID)
}

func decodeFiles(files datatypes.JSON) map[string]string {
	manifest := map[string]string{}
	if len(files) > 0 {
		_ = json.Unmarshal(files, &manifest)
	}
	return manifest
}

func (s *DownloadService) FontFiles(ctx context.Context, accountID, fontID uuid.UUID) (map[string]string, error) {
	font, err := s.fontRepo.GetByID(ctx, fontID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if font == nil {
		return nil, utils.ErrRecordNotFound
	}

	ok, err := s.entitled(ctx, accountID, fontID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		return nil, utils.ErrForbidden
	}
	return decodeFiles(font.Files), nil
}

func (s *DownloadService) BundleFiles(ctx context.Context, accountID, bundleID uuid.UUID) (map[string]string, error) {
	bundle, err := s.bundleRepo.GetByID(ctx, bundleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if bundle == nil {
		return nil, utils.ErrRecordNotFound
	}

	ok, err := s.entitled(ctx, accountID, bundleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		return nil, utils.ErrForbidden
	}
	return decodeFiles(bundle.Files), nil
}
