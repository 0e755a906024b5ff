package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/app/services"
	"github.com/dsu-aiml/portal/internal/middleware"
)

const contactRequiredMessage = "Name, email and message required."

// ContactController handles contact form submissions
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// SubmitQuery stores a contact query
// @Summary Submit a contact query
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Query"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /contact [post]
func (c *ContactController) SubmitQuery(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, contactRequiredMessage)
		return
	}

	if err := c.contactService.SubmitQuery(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Query received."))
}
