package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/dsu-aiml/portal/internal/app/models/dto"
	"github.com/dsu-aiml/portal/internal/pkg/logger"
)

// RouteNotFoundMessage is the body text for unmatched routes
const RouteNotFoundMessage = "Route not found."

// RequestLogger logs one line per request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		} else if status >= http.StatusBadRequest {
			event = logger.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}

// Recovery turns a panic into a 500 envelope; the process keeps serving.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(ServerErrorMessage))
	})
}

// CORS allows the static frontend to be hosted on another origin
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	})
}

// StaticFiles serves an existing file under dir for GET and HEAD requests outside
// /api and lets every other request through. "/" serves index.html.
func StaticFiles(dir string) gin.HandlerFunc {
	if dir == "" {
		return func(*gin.Context) {}
	}
	files := static.Serve("/", static.LocalFile(dir, false))
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			return
		}
		if strings.HasPrefix(p, "/api/") || strings.Contains(p, "..") {
			return
		}
		files(c)
	}
}

// NotFound answers with the not-found envelope
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(RouteNotFoundMessage))
	}
}
