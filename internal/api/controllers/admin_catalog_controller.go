package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

// AdminCatalogController is the back-office write surface for products,
// partners, brands, licenses and discounts. All routes sit behind the admin
// role check.
type AdminCatalogController struct {
	productService  services.ProductAdminServiceInterface
	partnerService  services.PartnerServiceInterface
	brandService    services.BrandServiceInterface
	licenseService  services.LicenseServiceInterface
	discountService services.DiscountServiceInterface
}

func NewAdminCatalogController(
	productService services.ProductAdminServiceInterface,
	partnerService services.PartnerServiceInterface,
	brandService services.BrandServiceInterface,
	licenseService services.LicenseServiceInterface,
	discountService services.DiscountServiceInterface,
) *AdminCatalogController {
	return &AdminCatalogController{
		productService:  productService,
		partnerService:  partnerService,
		brandService:    brandService,
		licenseService:  licenseService,
		discountService: discountService,
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func (ctrl *AdminCatalogController) CreateFont(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.productService.CreateFont(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Font created")
}

func (ctrl *AdminCatalogController) UpdateFont(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.productService.UpdateFont(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Font updated")
}

func (ctrl *AdminCatalogController) DeleteFont(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.productService.DeleteFont(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Font deleted")
}

func (ctrl *AdminCatalogController) CreateBundle(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.productService.CreateBundle(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Bundle created")
}

func (ctrl *AdminCatalogController) UpdateBundle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.productService.UpdateBundle(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Bundle updated")
}

func (ctrl *AdminCatalogController) DeleteBundle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.productService.DeleteBundle(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Bundle deleted")
}

func (ctrl *AdminCatalogController) CreatePartner(c *gin.Context) {
	var req request_models.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.partnerService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Partner created")
}

func (ctrl *AdminCatalogController) UpdatePartner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.partnerService.Update(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Partner updated")
}

func (ctrl *AdminCatalogController) DeletePartner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.partnerService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Partner deleted")
}

func (ctrl *AdminCatalogController) ListBrands(c *gin.Context) {
	brands, err := ctrl.brandService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, brands, "")
}

func (ctrl *AdminCatalogController) CreateBrand(c *gin.Context) {
	var req request_models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.brandService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Brand created")
}

func (ctrl *AdminCatalogController) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.brandService.Update(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Brand updated")
}

func (ctrl *AdminCatalogController) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.brandService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Brand deleted")
}

func (ctrl *AdminCatalogController) CreateLicense(c *gin.Context) {
	var req request_models.LicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.licenseService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "License created")
}

func (ctrl *AdminCatalogController) UpdateLicense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.LicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.licenseService.Update(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "License updated")
}

func (ctrl *AdminCatalogController) DeleteLicense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.licenseService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "License deleted")
}

func (ctrl *AdminCatalogController) ListDiscounts(c *gin.Context) {
	discounts, err := ctrl.discountService.GetAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, discounts, "")
}

func (ctrl *AdminCatalogController) CreateDiscount(c *gin.Context) {
	var req request_models.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := ctrl.discountService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Discount created")
}

func (ctrl *AdminCatalogController) UpdateDiscount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request_models.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.discountService.Update(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Discount updated")
}

func (ctrl *AdminCatalogController) DeleteDiscount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctrl.discountService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Discount deleted")
}
