package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/repositories"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{postService: postService}
}

func (ctrl *PostController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	res, err := ctrl.postService.List(c.Request.Context(), repositories.PostQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     page,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}

func (ctrl *PostController) Detail(c *gin.Context) {
	res, err := ctrl.postService.Detail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "")
}
