package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type DownloadController struct {
	downloadService services.DownloadServiceInterface
}

func NewDownloadController(downloadService services.DownloadServiceInterface) *DownloadController {
	return &DownloadController{downloadService: downloadService}
}

// FontFiles returns the per-style file manifest for a purchased or
// subscription-covered font.
func (ctrl *DownloadController) FontFiles(c *gin.Context) {
	ctrl.serveFiles(c, ctrl.downloadService.FontFiles)
}

func (ctrl *DownloadController) BundleFiles(c *gin.Context) {
	ctrl.serveFiles(c, ctrl.downloadService.BundleFiles)
}

func (ctrl *DownloadController) serveFiles(c *gin.Context, fetch func(ctx context.Context, accountID, productID uuid.UUID) (map[string]string, error)) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	files, err := fetch(c.Request.Context(), accountID, productID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"files": files}, "")
}
