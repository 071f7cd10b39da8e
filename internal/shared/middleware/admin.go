package middleware

import (
	"github.com/gin-gonic/gin"

	"bookstore-web/internal/shared/auth"
	"bookstore-web/internal/shared/response"
)

// SuperuserRequired sends anyone who is not a signed-in superuser back to the
// home page, without a message. It runs before any handler lookup.
func SuperuserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsSuperuser(c) {
			response.Redirect(c, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
