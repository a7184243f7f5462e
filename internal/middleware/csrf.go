package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	csrf "github.com/utrack/gin-csrf"
)

// CSRF rejects state-changing requests whose _csrf field or X-CSRF-TOKEN header does not match the session token.
// It must run after Sessions.
func CSRF(secret string) gin.HandlerFunc {
	return csrf.Middleware(csrf.Options{
		Secret: secret,
		ErrorFunc: func(c *gin.Context) {
			log.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("csrf token mismatch")
			abortWithPage(c, http.StatusBadRequest, "The form has expired or was not sent from this site. Please try again.")
		},
	})
}

// Authorizer decides whether a session may perform admin actions.
type Authorizer interface {
	Authorize(s sessions.Session) error
}

// RequireAdmin stops the request with 403 unless the session is privileged.
func RequireAdmin(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authorize(sessions.Default(c)); err != nil {
			abortWithPage(c, http.StatusForbidden, "You need to be logged in as admin to do that.")
			return
		}
		c.Next()
	}
}

func abortWithPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
	c.Abort()
}
