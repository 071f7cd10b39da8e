package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-web/internal/shared/session"
	"bookstore-web/pkg/logger"
)

// SessionConfig controls the session cookie.
type SessionConfig struct {
	Store        *session.Store
	CookieName   string
	CookieSecure bool
	MaxAge       time.Duration
}

// Session loads the visitor's session before the handler and saves it afterwards when it changed.
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionIDFromCookie(c, config.CookieName)
		if id == "" {
			id = uuid.NewString()
			setSessionCookie(c, id, config)
		}

		sess, err := config.Store.Load(c.Request.Context(), id)
		if err != nil {
			logger.Error("session load failed", err)
			sess = session.New(id)
		}
		session.Attach(c, sess)

		c.Next()

		if sess.Modified() {
			if err := config.Store.Save(c.Request.Context(), sess); err != nil {
				logger.Error("session save failed", err)
			}
		}
	}
}

func sessionIDFromCookie(c *gin.Context, name string) string {
	id, err := c.Cookie(name)
	if err != nil || id == "" {
		return ""
	}
	// Validate UUID format for security
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return id
}

func setSessionCookie(c *gin.Context, id string, config SessionConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		config.CookieName,
		id,
		int(config.MaxAge.Seconds()),
		"/",
		"",
		config.CookieSecure,
		true,
	)
}
