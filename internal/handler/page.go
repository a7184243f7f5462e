package handler

import (
	"net/http"

	"workbrew/internal/auth"
	"workbrew/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	csrf "github.com/utrack/gin-csrf"
)

// render executes an HTML page with the values every page needs: the CSRF token, the admin flag and pending flashes.
// The session is saved before the body is written so the cookie header still goes out.
func render(c *gin.Context, status int, name string, data gin.H) {
	s := sessions.Default(c)

	data["CSRFToken"] = csrf.GetToken(c)
	data["IsAdmin"] = auth.IsPrivileged(s)
	data["Flashes"] = s.Flashes()

	if err := s.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
	}

	c.HTML(status, name, data)
}

func renderError(c *gin.Context, status int, message string) {
	render(c, status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// redirectHome queues a flash message and sends the client back to the listing.
func redirectHome(c *gin.Context, flash string) {
	s := sessions.Default(c)
	if flash != "" {
		s.AddFlash(flash)
	}
	if err := s.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
	}
	c.Redirect(http.StatusFound, "/")
}

func filterFromQuery(c *gin.Context) models.CafeFilter {
	return models.CafeFilter{
		Wifi:     c.Query("wifi") != "",
		Sockets:  c.Query("sockets") != "",
		Calls:    c.Query("calls") != "",
		Location: c.Query("location"),
	}
}
