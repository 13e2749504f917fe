package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/services"
	"stylishtype/pkg/utils"
)

type ContactController struct {
	mailService services.MailServiceInterface
}

func NewContactController(mailService services.MailServiceInterface) *ContactController {
	return &ContactController{mailService: mailService}
}

// Submit godoc
// @Summary Send a contact-form message to the shop inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact payload"
// @Success 200 {object} utils.APIResponse
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctrl.mailService.SendContactMessage(req.Name, req.Email, req.Subject, req.Message); err != nil {
		log.Printf("contact mail: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Could not send your message, please try again later")
		return
	}
	utils.RespondSuccess(c, nil, "Message sent")
}
