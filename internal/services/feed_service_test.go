package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stylishtype/internal/models/db_models"
)

func newFeedFixture() FeedServiceInterface {
	sale := &db_models.Discount{Name: "Launch", Percentage: 20}

	font := db_models.Font{Name: "Grotesk & Co", Slug: "grotesk-and-co", Price: 25, Discount: sale}
	font.ID = uuid.New()
	plain := db_models.Font{Name: "Plain Serif", Slug: "plain-serif", Price: 19.99}
	plain.ID = uuid.New()

	bundle := db_models.Bundle{Name: "Starter Pack", Slug: "starter-pack", Price: 99}
	bundle.ID = uuid.New()

	post := db_models.Post{Title: "Pairing tips", Slug: "pairing-tips", Published: true}
	post.ID = uuid.New()

	partner := db_models.Partner{Name: "Foundry X", Slug: "foundry-x"}
	partner.ID = uuid.New()

	return NewFeedService("https://stylishtype.com/", "StylishType",
		&stubFontRepo{fonts: []db_models.Font{font, plain}},
		&stubBundleRepo{bundles: []db_models.Bundle{bundle}},
		&stubPostRepo{posts: []db_models.Post{post}},
		&stubPartnerRepo{partners: []db_models.Partner{partner}})
}

func TestMerchantFeedPrices(t *testing.T) {
	feed, err := newFeedFixture().MerchantFeed(context.Background())
	require.NoError(t, err)

	// discounted item carries both the list price and the sale price
	assert.Contains(t, feed, "<g:price>25.00 USD</g:price>")
	assert.Contains(t, feed, "<g:sale_price>20.00 USD</g:sale_price>")

	// non-discounted item has a price but no sale price
	assert.Contains(t, feed, "<g:price>19.99 USD</g:price>")
	assert.Equal(t, 1, strings.Count(feed, "<g:sale_price>"))
}

func TestMerchantFeedEscapesNames(t *testing.T) {
	feed, err := newFeedFixture().MerchantFeed(context.Background())
	require.NoError(t, err)

	assert.Contains(t, feed, "Grotesk &amp; Co")
	assert.NotContains(t, feed, "<g:title>Grotesk & Co</g:title>")
}

func TestMerchantFeedLinks(t *testing.T) {
	feed, err := newFeedFixture().MerchantFeed(context.Background())
	require.NoError(t, err)

	assert.Contains(t, feed, "<g:link>https://stylishtype.com/fonts/grotesk-and-co</g:link>")
	assert.Contains(t, feed, "<g:link>https://stylishtype.com/bundles/starter-pack</g:link>")
}

func TestMerchantFeedDescriptions(t *testing.T) {
	feed, err := newFeedFixture().MerchantFeed(context.Background())
	require.NoError(t, err)

	assert.Contains(t, feed, "<g:description>Plain Serif is a font by StylishType.</g:description>")
	assert.Contains(t, feed, "<g:description>Starter Pack is a font bundle by StylishType.</g:description>")
}

func TestSitemapCoversCatalogBlogAndPartners(t *testing.T) {
	sitemap, err := newFeedFixture().Sitemap(context.Background())
	require.NoError(t, err)

	body := string(sitemap)
	assert.Contains(t, body, "<loc>https://stylishtype.com/fonts/plain-serif</loc>")
	assert.Contains(t, body, "<loc>https://stylishtype.com/bundles/starter-pack</loc>")
	assert.Contains(t, body, "<loc>https://stylishtype.com/blog/pairing-tips</loc>")
	assert.Contains(t, body, "<loc>https://stylishtype.com/partners/foundry-x</loc>")
}

func TestRobotsPointsAtSitemap(t *testing.T) {
	robots := newFeedFixture().Robots()

	assert.Contains(t, robots, "Sitemap: https://stylishtype.com/sitemap.xml")
	assert.Contains(t, robots, "Disallow: /admin/")
}
