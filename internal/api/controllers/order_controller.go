package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type OrderController struct {
	orderService    services.OrderServiceInterface
	documentService services.DocumentServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface, documentService services.DocumentServiceInterface) *OrderController {
	return &OrderController{orderService: orderService, documentService: documentService}
}

func (ctrl *OrderController) List(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	res, err := ctrl.orderService.ListByAccount(c.Request.Context(), accountID, page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (ctrl *OrderController) Detail(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	res, err := ctrl.orderService.Detail(c.Request.Context(), accountID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

// Invoice streams the order's invoice as a PDF attachment.
func (ctrl *OrderController) Invoice(c *gin.Context) {
	ctrl.servePDF(c, ctrl.documentService.InvoicePDF)
}

// Eula streams the license agreement covering the order's items.
func (ctrl *OrderController) Eula(c *gin.Context) {
	ctrl.servePDF(c, ctrl.documentService.EulaPDF)
}

func (ctrl *OrderController) servePDF(c *gin.Context, render func(ctx context.Context, accountID, orderID uuid.UUID) ([]byte, string, error)) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	data, filename, err := render(c.Request.Context(), accountID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
