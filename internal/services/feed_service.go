package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type FeedServiceInterface interface {
	MerchantFeed(ctx context.Context) (string, error)
	Sitemap(ctx context.Context) ([]byte, error)
	Robots() string
}

// FeedService renders the machine-readable surfaces: the product feed for ad
// catalogs, the sitemap and robots.txt.
type FeedService struct {
	baseURL     string
	brandName   string
	fontRepo    repositories.FontRepository
	bundleRepo  repositories.BundleRepository
	postRepo    repositories.PostRepository
	partnerRepo repositories.PartnerRepository
}

func NewFeedService(
	baseURL string,
	brandName string,
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	postRepo repositories.PostRepository,
	partnerRepo repositories.PartnerRepository,
) FeedServiceInterface {
	return &FeedService{
		baseURL:     strings.TrimRight(baseURL, "/"),
		brandName:   brandName,
		fontRepo:    fontRepo,
		bundleRepo:  bundleRepo,
		postRepo:    postRepo,
		partnerRepo: partnerRepo,
	}
}

// MerchantFeed emits an RSS 2.0 feed in the Google Merchant namespace, which
// Facebook catalog ingestion also accepts.
func (s *FeedService) MerchantFeed(ctx context.Context) (string, error) {
	fonts, err := s.fontRepo.All(ctx)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	bundles, err := s.bundleRepo.All(ctx)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<rss version="2.0" xmlns:g="http://base.google.com/ns/1.0">` + "\n")
	b.WriteString("<channel>\n")
	writeFeedTag(&b, "title", s.brandName)
	writeFeedTag(&b, "link", s.baseURL)
	writeFeedTag(&b, "description", s.brandName+" product catalog")

	for i := range fonts {
		font := &fonts[i]
		price, original := PriceView(font.Price, font.Discount)
		s.writeFeedItem(&b, feedItem{
			id:          "font-" + font.ID.String(),
			title:       font.Name,
			description: s.itemDescription(font.Name, "font", font.Category),
			link:        s.baseURL + "/fonts/" + font.Slug,
			image:       firstImage(font.PreviewImages),
			price:       price,
			original:    original,
		})
	}
	for i := range bundles {
		bundle := &bundles[i]
		price, original := PriceView(bundle.Price, bundle.Discount)
		s.writeFeedItem(&b, feedItem{
			id:          "bundle-" + bundle.ID.String(),
			title:       bundle.Name,
			description: s.itemDescription(bundle.Name, "font bundle", bundle.Category),
			link:        s.baseURL + "/bundles/" + bundle.Slug,
			image:       firstImage(bundle.PreviewImages),
			price:       price,
			original:    original,
		})
	}

	b.WriteString("</channel>\n</rss>\n")
	return b.String(), nil
}

type feedItem struct {
	id          string
	title       string
	description string
	link        string
	image       string
	price       float64
	original    *float64
}

// The catalog schema has no free-text description column, so the feed derives
// one from the name and category.
func (s *FeedService) itemDescription(name, kind, category string) string {
	if category != "" {
		return fmt.Sprintf("%s is a %s %s by %s.", name, strings.ToLower(category), kind, s.brandName)
	}
	return fmt.Sprintf("%s is a %s by %s.", name, kind, s.brandName)
}

// In the merchant schema g:price carries the pre-discount price and
// g:sale_price the charged one; without a discount only g:price is sent.
func (s *FeedService) writeFeedItem(b *strings.Builder, item feedItem) {
	b.WriteString("<item>\n")
	writeFeedTag(b, "g:id", item.id)
	writeFeedTag(b, "g:title", item.title)
	writeFeedTag(b, "g:description", item.description)
	writeFeedTag(b, "g:link", item.link)
	if item.image != "" {
		writeFeedTag(b, "g:image_link", item.image)
	}
	if item.original != nil {
		writeFeedTag(b, "g:price", fmt.Sprintf("%s USD", utils.FormatAmount(*item.original)))
		writeFeedTag(b, "g:sale_price", fmt.Sprintf("%s USD", utils.FormatAmount(item.price)))
	} else {
		writeFeedTag(b, "g:price", fmt.Sprintf("%s USD", utils.FormatAmount(item.price)))
	}
	writeFeedTag(b, "g:availability", "in stock")
	writeFeedTag(b, "g:condition", "new")
	writeFeedTag(b, "g:brand", s.brandName)
	b.WriteString("</item>\n")
}

func writeFeedTag(b *strings.Builder, tag, value string) {
	b.WriteString("<" + tag + ">")
	_ = xml.EscapeText(b, []byte(value))
	b.WriteString("</" + tag + ">\n")
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapIndex struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *FeedService) Sitemap(ctx context.Context) ([]byte, error) {
	fonts, err := s.fontRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	bundles, err := s.bundleRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	posts, err := s.postRepo.AllPublished(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	partners, err := s.partnerRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	index := sitemapIndex{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, path := range []string{"", "/fonts", "/bundles", "/blog", "/pricing"} {
		index.URLs = append(index.URLs, sitemapURL{Loc: s.baseURL + path})
	}
	for i := range fonts {
		index.URLs = append(index.URLs, sitemapURL{Loc: s.baseURL + "/fonts/" + fonts[i].Slug})
	}
	for i := range bundles {
		index.URLs = append(index.URLs, sitemapURL{Loc: s.baseURL + "/bundles/" + bundles[i].Slug})
	}
	for i := range posts {
		index.URLs = append(index.URLs, sitemapURL{Loc: s.baseURL + "/blog/" + posts[i].Slug})
	}
	for i := range partners {
		index.URLs = append(index.URLs, sitemapURL{Loc: s.baseURL + "/partners/" + partners[i].Slug})
	}

	data, err := xml.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

func (s *FeedService) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Sitemap: " + s.baseURL + "/sitemap.xml\n")
	return b.String()
}
