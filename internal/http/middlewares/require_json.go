package middlewares

import (
	"mime"
	"net/http"

	"github.com/geocoder89/staffportal/internal/http/handlers"
	"github.com/gin-gonic/gin"
)

// RequireJSON rejects bodies that are not declared as JSON. Mounted only on
// routes that read a body.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != "application/json" {
			handlers.RespondError(c, http.StatusBadRequest, "unsupported_media_type", "Invalid JSON in request body", nil)
			return
		}
		c.Next()
	}
}
