package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/models/response_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

// CartOwner identifies a cart either by an authenticated account or by the
// anonymous token issued on the first write.
type CartOwner struct {
	AccountID *uuid.UUID
	AnonToken string
}

type CartServiceInterface interface {
	Get(ctx context.Context, owner CartOwner) (response_models.CartResponse, error)
	AddItem(ctx context.Context, owner CartOwner, req request_models.AddCartItemRequest) (response_models.CartResponse, error)
	RemoveItem(ctx context.Context, owner CartOwner, key string) (response_models.CartResponse, error)
	Clear(ctx context.Context, owner CartOwner) error
}

type CartService struct {
	cartRepo    repositories.CartRepository
	fontRepo    repositories.FontRepository
	bundleRepo  repositories.BundleRepository
	licenseRepo repositories.LicenseRepository
}

func NewCartService(
	cartRepo repositories.CartRepository,
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	licenseRepo repositories.LicenseRepository,
) CartServiceInterface {
	return &CartService{
		cartRepo:    cartRepo,
		fontRepo:    fontRepo,
		bundleRepo:  bundleRepo,
		licenseRepo: licenseRepo,
	}
}

// CartItemKey builds the composite identity enforcing one product+license
// pair per cart.
func CartItemKey(productID, licenseID uuid.UUID) string {
	return fmt.Sprintf("%s-%s", productID, licenseID)
}

func (s *CartService) lookup(ctx context.Context, owner CartOwner) (*db_models.Cart, error) {
	if owner.AccountID != nil {
		return s.cartRepo.GetByAccount(ctx, *owner.AccountID)
	}
	if owner.AnonToken != "" {
		return s.cartRepo.GetByToken(ctx, owner.AnonToken)
	}
	return nil, nil
}

func (s *CartService) lookupOrCreate(ctx context.Context, owner CartOwner) (*db_models.Cart, error) {
	cart, err := s.lookup(ctx, owner)
	if err != nil || cart != nil {
		return cart, err
	}

	cart = &db_models.Cart{AccountID: owner.AccountID, AnonToken: owner.AnonToken}
	if owner.AccountID == nil && cart.AnonToken == "" {
		token, err := utils.GenerateSecureToken(24)
		if err != nil {
			return nil, err
		}
		cart.AnonToken = token
	}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// cartResponse derives count and totals from the items on every read; they
// are never stored.
func cartResponse(cart *db_models.Cart) response_models.CartResponse {
	res := response_models.CartResponse{
		Items: make([]response_models.CartItemResponse, 0),
	}
	if cart == nil {
		return res
	}

	var total, originalTotal float64
	for i := range cart.Items {
		item := &cart.Items[i]
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Price * float64(qty)
		if item.OriginalPrice != nil {
			originalTotal += *item.OriginalPrice * float64(qty)
		} else {
			originalTotal += item.Price * float64(qty)
		}

		res.Items = append(res.Items, response_models.CartItemResponse{
			Key:           item.Key,
			ProductID:     item.ProductID,
			ProductType:   item.ProductType,
			ProductName:   item.ProductName,
			ProductSlug:   item.ProductSlug,
			ImageURL:      item.ImageURL,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Quantity:      qty,
			LicenseID:     item.LicenseID,
			LicenseName:   item.LicenseName,
		})
	}

	res.Count = len(res.Items)
	res.Total = utils.RoundMoney(total)
	res.OriginalTotal = utils.RoundMoney(originalTotal)
	res.AnonToken = cart.AnonToken
	return res
}

func (s *CartService) Get(ctx context.Context, owner CartOwner) (response_models.CartResponse, error) {
	cart, err := s.lookup(ctx, owner)
	if err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}
	return cartResponse(cart), nil
}

func (s *CartService) AddItem(ctx context.Context, owner CartOwner, req request_models.AddCartItemRequest) (response_models.CartResponse, error) {
	license, err := s.licenseRepo.GetByID(ctx, req.LicenseID)
	if err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}
	if license == nil {
		return response_models.CartResponse{}, utils.ErrRecordNotFound
	}

	item := db_models.CartItem{
		Key:         CartItemKey(req.ProductID, req.LicenseID),
		ProductID:   req.ProductID,
		ProductType: req.ProductType,
		Quantity:    1,
		LicenseID:   license.ID,
		LicenseName: license.Name,
	}

	switch req.ProductType {
	case "bundle":
		bundle, err := s.bundleRepo.GetByID(ctx, req.ProductID)
		if err != nil {
			return response_models.CartResponse{}, utils.ErrDatabaseError
		}
		if bundle == nil {
			return response_models.CartResponse{}, utils.ErrRecordNotFound
		}
		price, original := PriceView(bundle.Price+license.BundlePrice, bundle.Discount)
		item.ProductName = bundle.Name
		item.ProductSlug = bundle.Slug
		item.Price = price
		item.OriginalPrice = original
		if len(bundle.PreviewImages) > 0 {
			item.ImageURL = bundle.PreviewImages[0]
		}
	default:
		font, err := s.fontRepo.GetByID(ctx, req.ProductID)
		if err != nil {
			return response_models.CartResponse{}, utils.ErrDatabaseError
		}
		if font == nil {
			return response_models.CartResponse{}, utils.ErrRecordNotFound
		}
		price, original := PriceView(font.Price+license.FontPrice, font.Discount)
		item.ProductName = font.Name
		item.ProductSlug = font.Slug
		item.Price = price
		item.OriginalPrice = original
		if len(font.PreviewImages) > 0 {
			item.ImageURL = font.PreviewImages[0]
		}
	}

	cart, err := s.lookupOrCreate(ctx, owner)
	if err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}

	exists, err := s.cartRepo.HasItem(ctx, cart.ID, item.Key)
	if err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}
	if exists {
		return cartResponse(cart), utils.ErrItemAlreadyInCart
	}

	item.CartID = cart.ID
	if err := s.cartRepo.AddItem(ctx, &item); err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}

	cart, err = s.cartRepo.GetByID(ctx, cart.ID)
	if err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}
	return cartResponse(cart), nil
}

// RemoveItem always reports success, whether or not the key was present.
func (s *CartService) RemoveItem(ctx context.Context, owner CartOwner, key string) (response_models.CartResponse, error) {
	cart, err := s.lookup(ctx, owner)
	if err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}
	if cart == nil {
		return cartResponse(nil), nil
	}

	if err := s.cartRepo.RemoveItem(ctx, cart.ID, key); err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}

	cart, err = s.cartRepo.GetByID(ctx, cart.ID)
	if err != nil {
		return response_models.CartResponse{}, utils.ErrDatabaseError
	}
	return cartResponse(cart), nil
}

func (s *CartService) Clear(ctx context.Context, owner CartOwner) error {
	cart, err := s.lookup(ctx, owner)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if cart == nil {
		return nil
	}
	if err := s.cartRepo.Clear(ctx, nil, cart.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
