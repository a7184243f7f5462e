package handler

import (
	"context"
	"errors"
	"net/http"

	"workbrew/internal/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	loginFailedMessage = "Invalid username or password."
	welcomeMessage     = "Welcome back, Admin."
	loggedOutMessage   = "Logged out successfully."
)

// AdminHandler handles admin login and logout
type AdminHandler struct {
	gate SessionGate
}

// SessionGate interface for dependency injection
type SessionGate interface {
	Login(ctx context.Context, s sessions.Session, username, password string) error
	Logout(ctx context.Context, s sessions.Session) error
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(gate SessionGate) *AdminHandler {
	return &AdminHandler{gate: gate}
}

// LoginForm handles GET /admin/login requests
func (h *AdminHandler) LoginForm(c *gin.Context) {
	if auth.IsPrivileged(sessions.Default(c)) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	render(c, http.StatusOK, "admin_login.html", gin.H{})
}

// Login handles POST /admin/login requests
func (h *AdminHandler) Login(c *gin.Context) {
	if auth.IsPrivileged(sessions.Default(c)) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")

	err := h.gate.Login(c.Request.Context(), sessions.Default(c), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Warn().Str("client_ip", c.ClientIP()).Msg("failed admin login")
			render(c, http.StatusOK, "admin_login.html", gin.H{
				"Error":    loginFailedMessage,
				"Username": username,
			})
			return
		}

		log.Error().Err(err).Msg("admin login failed")
		renderError(c, http.StatusInternalServerError, "Something went wrong logging in.")
		return
	}

	log.Info().Str("client_ip", c.ClientIP()).Msg("admin logged in")
	redirectHome(c, welcomeMessage)
}

// Logout handles GET /admin/logout requests
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context(), sessions.Default(c)); err != nil {
		log.Error().Err(err).Msg("admin logout failed")
	}

	redirectHome(c, loggedOutMessage)
}
