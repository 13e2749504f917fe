package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/repositories"
)

// In-memory repository stubs shared by the service tests.

type stubFontRepo struct {
	fonts       []db_models.Font
	popularity  map[uuid.UUID]int
	listedQuery repositories.CatalogQuery
	listCount   int64
}

func (s *stubFontRepo) List(_ context.Context, q repositories.CatalogQuery) ([]db_models.Font, int64, error) {
	s.listedQuery = q
	return s.fonts, s.listCount, nil
}

func (s *stubFontRepo) GetBySlug(_ context.Context, slug string) (*db_models.Font, error) {
	for i := range s.fonts {
		if s.fonts[i].Slug == slug {
			return &s.fonts[i], nil
		}
	}
	return nil, nil
}

func (s *stubFontRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Font, error) {
	for i := range s.fonts {
		if s.fonts[i].ID == id {
			return &s.fonts[i], nil
		}
	}
	return nil, nil
}

func (s *stubFontRepo) Related(context.Context, string, uuid.UUID, int) ([]db_models.Font, error) {
	return nil, nil
}

func (s *stubFontRepo) StaffPicks(context.Context, int) ([]db_models.Font, error) {
	var picks []db_models.Font
	for _, f := range s.fonts {
		if f.StaffPick {
			picks = append(picks, f)
		}
	}
	return picks, nil
}

func (s *stubFontRepo) Popular(context.Context, int) ([]db_models.Font, error) {
	return s.fonts, nil
}

func (s *stubFontRepo) All(context.Context) ([]db_models.Font, error) {
	return s.fonts, nil
}

func (s *stubFontRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Font, error) {
	var out []db_models.Font
	for _, id := range ids {
		for _, f := range s.fonts {
			if f.ID == id {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

func (s *stubFontRepo) Create(_ context.Context, font *db_models.Font) (uuid.UUID, error) {
	font.ID = uuid.New()
	s.fonts = append(s.fonts, *font)
	return font.ID, nil
}

func (s *stubFontRepo) Update(_ context.Context, font *db_models.Font) error {
	for i := range s.fonts {
		if s.fonts[i].ID == font.ID {
			s.fonts[i] = *font
		}
	}
	return nil
}

func (s *stubFontRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := s.fonts[:0]
	for _, f := range s.fonts {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.fonts = kept
	return nil
}

func (s *stubFontRepo) IncrementPopularity(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	if s.popularity == nil {
		s.popularity = map[uuid.UUID]int{}
	}
	s.popularity[id]++
	return nil
}

type stubBundleRepo struct {
	bundles    []db_models.Bundle
	popularity map[uuid.UUID]int
	listCount  int64
}

func (s *stubBundleRepo) List(_ context.Context, _ repositories.CatalogQuery) ([]db_models.Bundle, int64, error) {
	return s.bundles, s.listCount, nil
}

func (s *stubBundleRepo) GetBySlug(_ context.Context, slug string) (*db_models.Bundle, error) {
	for i := range s.bundles {
		if s.bundles[i].Slug == slug {
			return &s.bundles[i], nil
		}
	}
	return nil, nil
}

func (s *stubBundleRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Bundle, error) {
	for i := range s.bundles {
		if s.bundles[i].ID == id {
			return &s.bundles[i], nil
		}
	}
	return nil, nil
}

func (s *stubBundleRepo) Related(context.Context, string, uuid.UUID, int) ([]db_models.Bundle, error) {
	return nil, nil
}

func (s *stubBundleRepo) All(context.Context) ([]db_models.Bundle, error) {
	return s.bundles, nil
}

func (s *stubBundleRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Bundle, error) {
	var out []db_models.Bundle
	for _, id := range ids {
		for _, b := range s.bundles {
			if b.ID == id {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (s *stubBundleRepo) Create(_ context.Context, bundle *db_models.Bundle) (uuid.UUID, error) {
	bundle.ID = uuid.New()
	s.bundles = append(s.bundles, *bundle)
	return bundle.ID, nil
}

func (s *stubBundleRepo) Update(_ context.Context, bundle *db_models.Bundle) error {
	for i := range s.bundles {
		if s.bundles[i].ID == bundle.ID {
			s.bundles[i] = *bundle
		}
	}
	return nil
}

func (s *stubBundleRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := s.bundles[:0]
	for _, b := range s.bundles {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.bundles = kept
	return nil
}

func (s *stubBundleRepo) IncrementPopularity(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	if s.popularity == nil {
		s.popularity = map[uuid.UUID]int{}
	}
	s.popularity[id]++
	return nil
}

type stubLicenseRepo struct {
	licenses []db_models.License
}

func (s *stubLicenseRepo) GetAll(context.Context) ([]db_models.License, error) {
	return s.licenses, nil
}

func (s *stubLicenseRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.License, error) {
	for i := range s.licenses {
		if s.licenses[i].ID == id {
			return &s.licenses[i], nil
		}
	}
	return nil, nil
}

func (s *stubLicenseRepo) Create(_ context.Context, license *db_models.License) (uuid.UUID, error) {
	license.ID = uuid.New()
	s.licenses = append(s.licenses, *license)
	return license.ID, nil
}

func (s *stubLicenseRepo) Update(_ context.Context, license *db_models.License) error {
	for i := range s.licenses {
		if s.licenses[i].ID == license.ID {
			s.licenses[i] = *license
		}
	}
	return nil
}

func (s *stubLicenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := s.licenses[:0]
	for _, l := range s.licenses {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.licenses = kept
	return nil
}

type stubCartRepo struct {
	carts map[uuid.UUID]*db_models.Cart
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{carts: map[uuid.UUID]*db_models.Cart{}}
}

func (s *stubCartRepo) GetByAccount(_ context.Context, accountID uuid.UUID) (*db_models.Cart, error) {
	for _, cart := range s.carts {
		if cart.AccountID != nil && *cart.AccountID == accountID {
			return cart, nil
		}
	}
	return nil, nil
}

func (s *stubCartRepo) GetByToken(_ context.Context, token string) (*db_models.Cart, error) {
	for _, cart := range s.carts {
		if cart.AnonToken == token {
			return cart, nil
		}
	}
	return nil, nil
}

func (s *stubCartRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Cart, error) {
	return s.carts[id], nil
}

func (s *stubCartRepo) Create(_ context.Context, cart *db_models.Cart) error {
	cart.ID = uuid.New()
	s.carts[cart.ID] = cart
	return nil
}

func (s *stubCartRepo) AddItem(_ context.Context, item *db_models.CartItem) error {
	cart := s.carts[item.CartID]
	cart.Items = append(cart.Items, *item)
	return nil
}

func (s *stubCartRepo) HasItem(_ context.Context, cartID uuid.UUID, key string) (bool, error) {
	cart := s.carts[cartID]
	if cart == nil {
		return false, nil
	}
	for _, item := range cart.Items {
		if item.Key == key {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubCartRepo) RemoveItem(_ context.Context, cartID uuid.UUID, key string) error {
	cart := s.carts[cartID]
	if cart == nil {
		return nil
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Key != key {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	return nil
}

func (s *stubCartRepo) Clear(_ context.Context, _ *gorm.DB, cartID uuid.UUID) error {
	if cart := s.carts[cartID]; cart != nil {
		cart.Items = nil
	}
	return nil
}

type stubPartnerRepo struct {
	partners []db_models.Partner
}

func (s *stubPartnerRepo) GetAll(context.Context) ([]db_models.Partner, error) {
	return s.partners, nil
}

func (s *stubPartnerRepo) GetBySlug(_ context.Context, slug string) (*db_models.Partner, error) {
	for i := range s.partners {
		if s.partners[i].Slug == slug {
			return &s.partners[i], nil
		}
	}
	return nil, nil
}

func (s *stubPartnerRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Partner, error) {
	for i := range s.partners {
		if s.partners[i].ID == id {
			return &s.partners[i], nil
		}
	}
	return nil, nil
}

func (s *stubPartnerRepo) Create(_ context.Context, partner *db_models.Partner) (uuid.UUID, error) {
	partner.ID = uuid.New()
	s.partners = append(s.partners, *partner)
	return partner.ID, nil
}

func (s *stubPartnerRepo) Update(_ context.Context, partner *db_models.Partner) error {
	for i := range s.partners {
		if s.partners[i].ID == partner.ID {
			s.partners[i] = *partner
		}
	}
	return nil
}

func (s *stubPartnerRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := s.partners[:0]
	for _, p := range s.partners {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.partners = kept
	return nil
}

type stubPostRepo struct {
	posts []db_models.Post
}

func (s *stubPostRepo) List(_ context.Context, _ repositories.PostQuery) ([]db_models.Post, int64, error) {
	return s.posts, int64(len(s.posts)), nil
}

func (s *stubPostRepo) GetBySlug(_ context.Context, slug string) (*db_models.Post, error) {
	for i := range s.posts {
		if s.posts[i].Slug == slug {
			return &s.posts[i], nil
		}
	}
	return nil, nil
}

func (s *stubPostRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Post, error) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return &s.posts[i], nil
		}
	}
	return nil, nil
}

func (s *stubPostRepo) Related(context.Context, string, uuid.UUID, int) ([]db_models.Post, error) {
	return nil, nil
}

func (s *stubPostRepo) Latest(context.Context, int) ([]db_models.Post, error) {
	return s.posts, nil
}

func (s *stubPostRepo) AllPublished(context.Context) ([]db_models.Post, error) {
	return s.posts, nil
}

func (s *stubPostRepo) Create(_ context.Context, post *db_models.Post) (uuid.UUID, error) {
	post.ID = uuid.New()
	s.posts = append(s.posts, *post)
	return post.ID, nil
}

func (s *stubPostRepo) Update(_ context.Context, post *db_models.Post) error {
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = *post
		}
	}
	return nil
}

func (s *stubPostRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	return nil
}
