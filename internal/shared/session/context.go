package session

import (
	"github.com/gin-gonic/gin"
)

const contextKey = "session"

// Attach puts the session on the gin context.
func Attach(c *gin.Context, sess *Session) {
	c.Set(contextKey, sess)
}

// From returns the request session. Requests that bypassed the session
// middleware get a throwaway session so handlers never see nil.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	sess := New("")
	Attach(c, sess)
	return sess
}

func Success(c *gin.Context, text string) { From(c).AddMessage(LevelSuccess, text) }
func Info(c *gin.Context, text string)    { From(c).AddMessage(LevelInfo, text) }
func Warning(c *gin.Context, text string) { From(c).AddMessage(LevelWarning, text) }
func Error(c *gin.Context, text string)   { From(c).AddMessage(LevelError, text) }
