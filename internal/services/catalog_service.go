package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/response_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

const relatedLimit = 8
const homeRowLimit = 10

type CatalogServiceInterface interface {
	ListFonts(ctx context.Context, q repositories.CatalogQuery) (response_models.ProductListResponse, error)
	ListBundles(ctx context.Context, q repositories.CatalogQuery) (response_models.ProductListResponse, error)
	FontDetail(ctx context.Context, slug string) (response_models.ProductDetailResponse, error)
	BundleDetail(ctx context.Context, slug string) (response_models.ProductDetailResponse, error)
	Home(ctx context.Context) (response_models.HomeResponse, error)
}

type CatalogService struct {
	fontRepo   repositories.FontRepository
	bundleRepo repositories.BundleRepository
	postRepo   repositories.PostRepository
	siteRepo   repositories.SiteRepository
}

func NewCatalogService(
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	postRepo repositories.PostRepository,
	siteRepo repositories.SiteRepository,
) CatalogServiceInterface {
	return &CatalogService{
		fontRepo:   fontRepo,
		bundleRepo: bundleRepo,
		postRepo:   postRepo,
		siteRepo:   siteRepo,
	}
}

func fontResponse(f *db_models.Font) response_models.ProductResponse {
	price, original := PriceView(f.Price, f.Discount)
	res := response_models.ProductResponse{
		ID:            f.ID,
		Name:          f.Name,
		Slug:          f.Slug,
		Type:          "font",
		Price:         price,
		OriginalPrice: original,
		Category:      f.Category,
		StaffPick:     f.StaffPick,
		Tags:          f.Tags,
	}
	if f.Discount != nil && original != nil {
		res.DiscountName = f.Discount.Name
	}
	if len(f.PreviewImages) > 0 {
		res.ImageURL = f.PreviewImages[0]
	}
	if f.Partner != nil {
		res.PartnerName = f.Partner.Name
		res.PartnerSlug = f.Partner.Slug
	}
	return res
}

func bundleResponse(b *db_models.Bundle) response_models.ProductResponse {
	price, original := PriceView(b.Price, b.Discount)
	res := response_models.ProductResponse{
		ID:            b.ID,
		Name:          b.Name,
		Slug:          b.Slug,
		Type:          "bundle",
		Price:         price,
		OriginalPrice: original,
		Category:      b.Category,
		StaffPick:     b.StaffPick,
		Tags:          b.Tags,
	}
	if b.Discount != nil && original != nil {
		res.DiscountName = b.Discount.Name
	}
	if len(b.PreviewImages) > 0 {
		res.ImageURL = b.PreviewImages[0]
	}
	if b.Partner != nil {
		res.PartnerName = b.Partner.Name
		res.PartnerSlug = b.Partner.Slug
	}
	return res
}

func (s *CatalogService) ListFonts(ctx context.Context, q repositories.CatalogQuery) (response_models.ProductListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	fonts, count, err := s.fontRepo.List(ctx, q)
	if err != nil {
		return response_models.ProductListResponse{}, utils.ErrDatabaseError
	}

	items := make([]response_models.ProductResponse, 0, len(fonts))
	for i := range fonts {
		items = append(items, fontResponse(&fonts[i]))
	}
	return response_models.ProductListResponse{
		Fonts:      items,
		TotalPages: repositories.TotalPages(count, repositories.CatalogPageSize),
	}, nil
}

func (s *CatalogService) ListBundles(ctx context.Context, q repositories.CatalogQuery) (response_models.ProductListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	bundles, count, err := s.bundleRepo.List(ctx, q)
	if err != nil {
		return response_models.ProductListResponse{}, utils.ErrDatabaseError
	}

	items := make([]response_models.ProductResponse, 0, len(bundles))
	for i := range bundles {
		items = append(items, bundleResponse(&bundles[i]))
	}
	return response_models.ProductListResponse{
		Bundles:    items,
		TotalPages: repositories.TotalPages(count, repositories.CatalogPageSize),
	}, nil
}

func (s *CatalogService) FontDetail(ctx context.Context, slug string) (response_models.ProductDetailResponse, error) {
	font, err := s.fontRepo.GetBySlug(ctx, slug)
	if err != nil {
		return response_models.ProductDetailResponse{}, utils.ErrDatabaseError
	}
	if font == nil {
		return response_models.ProductDetailResponse{}, utils.ErrRecordNotFound
	}

	related, err := s.fontRepo.Related(ctx, font.Category, font.ID, relatedLimit)
	if err != nil {
		return response_models.ProductDetailResponse{}, utils.ErrDatabaseError
	}

	detail := response_models.ProductDetailResponse{
		ProductResponse: fontResponse(font),
		PreviewImages:   font.PreviewImages,
		StyleTags:       font.StyleTags,
		Related:         make([]response_models.ProductResponse, 0, len(related)),
	}
	for i := range related {
		detail.Related = append(detail.Related, fontResponse(&related[i]))
	}
	return detail, nil
}

func (s *CatalogService) BundleDetail(ctx context.Context, slug string) (response_models.ProductDetailResponse, error) {
	bundle, err := s.bundleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return response_models.ProductDetailResponse{}, utils.ErrDatabaseError
	}
	if bundle == nil {
		return response_models.ProductDetailResponse{}, utils.ErrRecordNotFound
	}

	related, err := s.bundleRepo.Related(ctx, bundle.Category, bundle.ID, relatedLimit)
	if err != nil {
		return response_models.ProductDetailResponse{}, utils.ErrDatabaseError
	}

	detail := response_models.ProductDetailResponse{
		ProductResponse: bundleResponse(bundle),
		PreviewImages:   bundle.PreviewImages,
		StyleTags:       bundle.StyleTags,
		Related:         make([]response_models.ProductResponse, 0, len(related)),
	}
	for i := range related {
		detail.Related = append(detail.Related, bundleResponse(&related[i]))
	}
	return detail, nil
}

// Home composes the landing page from independent datasets fetched
// concurrently.
func (s *CatalogService) Home(ctx context.Context) (response_models.HomeResponse, error) {
	var (
		staffPicks []db_models.Font
		marquee    []db_models.Font
		posts      []db_models.Post
		banners    []db_models.Banner
		sections   []db_models.HomepageSection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		staffPicks, err = s.fontRepo.StaffPicks(gctx, homeRowLimit)
		return err
	})
	g.Go(func() (err error) {
		marquee, err = s.fontRepo.Popular(gctx, homeRowLimit)
		return err
	})
	g.Go(func() (err error) {
		posts, err = s.postRepo.Latest(gctx, 3)
		return err
	})
	g.Go(func() (err error) {
		banners, err = s.siteRepo.ActiveBanners(gctx)
		return err
	})
	g.Go(func() (err error) {
		sections, err = s.siteRepo.HomepageSections(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return response_models.HomeResponse{}, utils.ErrDatabaseError
	}

	home := response_models.HomeResponse{
		StaffPicks: make([]response_models.ProductResponse, 0, len(staffPicks)),
		Marquee:    make([]response_models.ProductResponse, 0, len(marquee)),
		Posts:      make([]response_models.PostResponse, 0, len(posts)),
		Banners:    make([]response_models.BannerResponse, 0, len(banners)),
	}
	for i := range staffPicks {
		home.StaffPicks = append(home.StaffPicks, fontResponse(&staffPicks[i]))
	}
	for i := range marquee {
		home.Marquee = append(home.Marquee, fontResponse(&marquee[i]))
	}
	for i := range posts {
		home.Posts = append(home.Posts, postResponse(&posts[i]))
	}
	for i := range banners {
		home.Banners = append(home.Banners, response_models.BannerResponse{
			ID:       banners[i].ID,
			ImageURL: banners[i].ImageURL,
			LinkURL:  banners[i].LinkURL,
			Position: banners[i].Position,
		})
	}

	for i := range sections {
		res, err := s.resolveSection(ctx, &sections[i])
		if err != nil {
			return response_models.HomeResponse{}, utils.ErrDatabaseError
		}
		home.Sections = append(home.Sections, res)
	}
	return home, nil
}

// resolveSection loads the assigned products for a homepage slot, keeping
// the editor's ordering.
func (s *CatalogService) resolveSection(ctx context.Context, section *db_models.HomepageSection) (response_models.HomepageSectionRes, error) {
	res := response_models.HomepageSectionRes{
		Slot:     section.Slot,
		Title:    section.Title,
		Products: []response_models.ProductResponse{},
	}

	byID := make(map[string]response_models.ProductResponse, len(section.Products))

	var fontIDs, bundleIDs []uuid.UUID
	for _, p := range section.Products {
		if p.ProductType == "bundle" {
			bundleIDs = append(bundleIDs, p.ProductID)
		} else {
			fontIDs = append(fontIDs, p.ProductID)
		}
	}

	fonts, err := s.fontRepo.GetByIDs(ctx, fontIDs)
	if err != nil {
		return res, err
	}
	for i := range fonts {
		byID[fonts[i].ID.String()] = fontResponse(&fonts[i])
	}

	bundles, err := s.bundleRepo.GetByIDs(ctx, bundleIDs)
	if err != nil {
		return res, err
	}
	for i := range bundles {
		byID[bundles[i].ID.String()] = bundleResponse(&bundles[i])
	}

	for _, p := range section.Products {
		if item, ok := byID[p.ProductID.String()]; ok {
			res.Products = append(res.Products, item)
		}
	}
	return res, nil
}
