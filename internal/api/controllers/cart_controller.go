package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

// CartTokenHeader carries the anonymous cart token for guests; the response
// body echoes it back so the client can persist it.
const CartTokenHeader = "X-Cart-Token"

type CartController struct {
	cartService services.CartServiceInterface
}

func NewCartController(cartService services.CartServiceInterface) *CartController {
	return &CartController{cartService: cartService}
}

func cartOwnerFromRequest(c *gin.Context) services.CartOwner {
	owner := services.CartOwner{AnonToken: c.GetHeader(CartTokenHeader)}
	if accountID, ok := currentAccountID(c); ok {
		owner.AccountID = &accountID
	}
	return owner
}

func (ctrl *CartController) Get(c *gin.Context) {
	res, err := ctrl.cartService.Get(c.Request.Context(), cartOwnerFromRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

// AddItem godoc
// @Summary Add a product+license pair to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body request_models.AddCartItemRequest true "Cart item payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req request_models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	res, err := ctrl.cartService.AddItem(c.Request.Context(), cartOwnerFromRequest(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Item added to cart")
}

func (ctrl *CartController) RemoveItem(c *gin.Context) {
	res, err := ctrl.cartService.RemoveItem(c.Request.Context(), cartOwnerFromRequest(c), c.Param("key"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Item removed from cart")
}

func (ctrl *CartController) Clear(c *gin.Context) {
	if err := ctrl.cartService.Clear(c.Request.Context(), cartOwnerFromRequest(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Cart cleared")
}
