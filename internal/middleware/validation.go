package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/pkg/validation"
)

// InvalidBodyMessage is returned when the body is not the JSON the route expects
const InvalidBodyMessage = "Invalid request body."

// HandleBindError answers a failed ShouldBindJSON. Missing required fields get
// requiredMessage, other rule violations a readable sentence naming the field.
func HandleBindError(c *gin.Context, err error, requiredMessage string) {
	message := InvalidBodyMessage
	if validation.RequiredFields(err) {
		message = requiredMessage
	} else if msg, ok := validation.Message(err); ok {
		message = msg
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}
