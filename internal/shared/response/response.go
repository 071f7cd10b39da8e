package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-web/internal/shared/auth"
	"bookstore-web/internal/shared/session"
	"bookstore-web/pkg/logger"
)

// HTML renders a named template with the values every page needs:
// the signed-in user, pending flash messages and the bag count.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	sess := session.From(c)
	data["messages"] = sess.PopMessages()
	data["bag_count"] = sess.ItemCount()
	data["request_path"] = c.Request.URL.Path

	if user, ok := auth.User(c); ok {
		data["user"] = user
	}

	c.HTML(status, name, data)
}

// Redirect sends a 302 to location.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// NotFound renders the 404 page.
func NotFound(c *gin.Context) {
	HTML(c, http.StatusNotFound, "404.html", nil)
	c.Abort()
}

// InternalError logs err and renders the 500 page.
func InternalError(c *gin.Context, err error) {
	logger.Error("request failed", err)
	_ = c.Error(err)
	HTML(c, http.StatusInternalServerError, "500.html", nil)
	c.Abort()
}
