package middleware

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"bookstore-web/internal/shared/auth"
	"bookstore-web/internal/shared/response"
	"bookstore-web/pkg/jwt"
)

// LoginURL is where LoginRequired sends anonymous visitors.
const LoginURL = "/accounts/login/"

// Authenticate reads the token cookie and, when valid, attaches the identity.
// Missing or invalid tokens leave the request anonymous.
func Authenticate(manager *jwt.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := manager.ValidateToken(token)
		if err != nil {
			// stale cookie
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.Next()
			return
		}

		auth.SetUser(c, claims)
		c.Next()
	}
}

// LoginRequired redirects anonymous visitors to the login page with a next parameter.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.User(c); !ok {
			response.Redirect(c, LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}
