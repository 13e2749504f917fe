package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/repositories"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	partnerService services.PartnerServiceInterface
	licenseService services.LicenseServiceInterface
	siteService    services.SiteServiceInterface
}

func NewCatalogController(
	catalogService services.CatalogServiceInterface,
	partnerService services.PartnerServiceInterface,
	licenseService services.LicenseServiceInterface,
	siteService services.SiteServiceInterface,
) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		partnerService: partnerService,
		licenseService: licenseService,
		siteService:    siteService,
	}
}

func catalogQueryFromRequest(c *gin.Context) repositories.CatalogQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return repositories.CatalogQuery{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		PartnerSlug: c.Query("partner"),
		Tag:         c.Query("tag"),
		Sort:        c.Query("sort"),
		Page:        page,
	}
}

// ListFonts godoc
// @Summary List fonts with storefront filters
// @Tags Catalog
// @Produce json
// @Param page query int false "1-based page"
// @Param search query string false "Name search"
// @Param category query string false "Category filter"
// @Param partner query string false "Partner slug"
// @Param tag query string false "Tag or style tag"
// @Param sort query string false "Newest | Oldest | A to Z | Z to A | Popular | Staff Pick"
// @Success 200 {object} utils.APIResponse
// @Router /fonts [get]
func (ctrl *CatalogController) ListFonts(c *gin.Context) {
	res, err := ctrl.catalogService.ListFonts(c.Request.Context(), catalogQueryFromRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

// ListBundles godoc
// @Summary List bundles with storefront filters
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /bundles [get]
func (ctrl *CatalogController) ListBundles(c *gin.Context) {
	res, err := ctrl.catalogService.ListBundles(c.Request.Context(), catalogQueryFromRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (ctrl *CatalogController) FontDetail(c *gin.Context) {
	res, err := ctrl.catalogService.FontDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (ctrl *CatalogController) BundleDetail(c *gin.Context) {
	res, err := ctrl.catalogService.BundleDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

// Home godoc
// @Summary Landing page datasets
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /home [get]
func (ctrl *CatalogController) Home(c *gin.Context) {
	res, err := ctrl.catalogService.Home(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (ctrl *CatalogController) ListPartners(c *gin.Context) {
	partners, err := ctrl.partnerService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, partners, "")
}

func (ctrl *CatalogController) PartnerDetail(c *gin.Context) {
	partner, err := ctrl.partnerService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, partner, "")
}

func (ctrl *CatalogController) ListLicenses(c *gin.Context) {
	licenses, err := ctrl.licenseService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, licenses, "")
}

func (ctrl *CatalogController) SiteConfig(c *gin.Context) {
	config, err := ctrl.siteService.GetConfig(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, config, "")
}

func (ctrl *CatalogController) Gallery(c *gin.Context) {
	images, err := ctrl.siteService.GalleryImages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, images, "")
}
