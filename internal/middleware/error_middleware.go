package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/pkg/apperrors"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// ServerErrorMessage is the only text a client sees for an unexpected failure
const ServerErrorMessage = "Server error."

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error while serving request")
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(ServerErrorMessage))
		return
	}

	message, ok := apperrors.PublicMessage(err)
	if !ok {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}
