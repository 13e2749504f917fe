package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type FeedController struct {
	feedService services.FeedServiceInterface
}

func NewFeedController(feedService services.FeedServiceInterface) *FeedController {
	return &FeedController{feedService: feedService}
}

// MerchantFeed serves the full product catalog in the merchant RSS schema.
func (ctrl *FeedController) MerchantFeed(c *gin.Context) {
	feed, err := ctrl.feedService.MerchantFeed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(feed))
}

func (ctrl *FeedController) Sitemap(c *gin.Context) {
	sitemap, err := ctrl.feedService.Sitemap(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", sitemap)
}

func (ctrl *FeedController) Robots(c *gin.Context) {
	c.String(http.StatusOK, ctrl.feedService.Robots())
}
