package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-web/pkg/jwt"
)

const userKey = "user"

// SetUser stores the authenticated identity on the context.
func SetUser(c *gin.Context, claims *jwt.Claims) {
	c.Set(userKey, claims)
}

// User returns the authenticated identity, if any.
func User(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok && claims != nil
}

// IsSuperuser reports whether the request comes from a signed-in superuser.
func IsSuperuser(c *gin.Context) bool {
	claims, ok := User(c)
	return ok && claims.IsSuperuser
}

// UserID returns the signed-in user's id.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := User(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
