package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

// AdminSiteController covers the content side of the back office: blog posts,
// banners, gallery, homepage sections and site configuration.
type AdminSiteController struct {
	postService services.PostServiceInterface
	siteService services.SiteServiceInterface
}

func NewAdminSiteController(postService services.PostServiceInterface, siteService services.SiteServiceInterface) *AdminSiteController {
	return &AdminSiteController{postService: postService, siteService: siteService}
}

func (ctrl *AdminSiteController) CreatePost(c *gin.Context) {
	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.postService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Post created")
}

func (ctrl *AdminSiteController) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.postService.Update(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Post updated")
}

func (ctrl *AdminSiteController) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.postService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Post deleted")
}

func (ctrl *AdminSiteController) ListBanners(c *gin.Context) {
	banners, err := ctrl.siteService.AllBanners(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, banners, "")
}

func (ctrl *AdminSiteController) CreateBanner(c *gin.Context) {
	var req request_models.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.siteService.CreateBanner(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Banner created")
}

func (ctrl *AdminSiteController) UpdateBanner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.siteService.UpdateBanner(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Banner updated")
}

func (ctrl *AdminSiteController) DeleteBanner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.siteService.DeleteBanner(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Banner deleted")
}

func (ctrl *AdminSiteController) CreateGalleryImage(c *gin.Context) {
	var req request_models.GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.siteService.CreateGalleryImage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Gallery image created")
}

func (ctrl *AdminSiteController) UpdateGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.siteService.UpdateGalleryImage(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Gallery image updated")
}

func (ctrl *AdminSiteController) DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.siteService.DeleteGalleryImage(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Gallery image deleted")
}

func (ctrl *AdminSiteController) GetConfig(c *gin.Context) {
	config, err := ctrl.siteService.GetConfig(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, config, "")
}

func (ctrl *AdminSiteController) UpsertConfig(c *gin.Context) {
	var req request_models.SiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.siteService.UpsertConfig(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Configuration saved")
}

// SetHomepageSection replaces a landing-page slot's product assignment.
func (ctrl *AdminSiteController) SetHomepageSection(c *gin.Context) {
	slot := c.Param("slot")
	var req request_models.HomepageSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.siteService.SetHomepageSection(c.Request.Context(), slot, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Homepage section saved")
}
