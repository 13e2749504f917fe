package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

func (ctrl *SubscriptionController) ListPlans(c *gin.Context) {
	plans, err := ctrl.subscriptionService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "")
}

// Status returns the caller's active subscription; 404 means none is in
// effect.
func (ctrl *SubscriptionController) Status(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	status, err := ctrl.subscriptionService.Status(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, status, "")
}
