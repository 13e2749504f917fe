package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type CheckoutController struct {
	checkoutService services.CheckoutServiceInterface
}

func NewCheckoutController(checkoutService services.CheckoutServiceInterface) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// CreateOrder godoc
// @Summary Open a payment gateway order for the cart or a plan
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload; empty plan_code charges the cart"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) CreateOrder(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := ctrl.checkoutService.CreateOrder(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Checkout created")
}

// CaptureOrder godoc
// @Summary Capture an approved gateway order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body request_models.CaptureCheckoutRequest true "Capture payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /checkout/capture [post]
func (ctrl *CheckoutController) CaptureOrder(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req request_models.CaptureCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := ctrl.checkoutService.CaptureOrder(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Payment captured")
}
