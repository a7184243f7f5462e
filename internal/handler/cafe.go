package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"workbrew/internal/models"
	"workbrew/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

const cafeAddedMessage = "Cafe added! It's now live on the map."

// CafeHandler serves the listing page, the submission form and listing removal
type CafeHandler struct {
	service CafeService
}

// CafeService interface for dependency injection
type CafeService interface {
	List(ctx context.Context, filter models.CafeFilter) (*service.Listing, error)
	Submit(ctx context.Context, sub service.CafeSubmission) (*models.Cafe, error)
	Delete(ctx context.Context, id int64) (*models.Cafe, error)
}

// NewCafeHandler creates a new cafe handler
func NewCafeHandler(svc CafeService) *CafeHandler {
	return &CafeHandler{service: svc}
}

// Index handles GET / requests
func (h *CafeHandler) Index(c *gin.Context) {
	listing, err := h.service.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		log.Error().Err(err).Msg("failed to list cafes")
		renderError(c, http.StatusInternalServerError, "Something went wrong loading the cafes.")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{"Listing": listing})
}

// AddForm handles GET /add requests
func (h *CafeHandler) AddForm(c *gin.Context) {
	render(c, http.StatusOK, "add_cafe.html", gin.H{
		"Form":   service.CafeSubmission{},
		"Errors": service.ValidationErrors{},
	})
}

// Add handles POST /add requests
func (h *CafeHandler) Add(c *gin.Context) {
	var sub service.CafeSubmission
	if err := c.ShouldBindWith(&sub, binding.Form); err != nil {
		renderError(c, http.StatusBadRequest, "The form could not be read.")
		return
	}

	cafe, err := h.service.Submit(c.Request.Context(), sub)
	if err != nil {
		var verrs service.ValidationErrors
		if errors.As(err, &verrs) {
			render(c, http.StatusOK, "add_cafe.html", gin.H{
				"Form":   sub.Trimmed(),
				"Errors": verrs,
			})
			return
		}

		log.Error().Err(err).Msg("failed to add cafe")
		renderError(c, http.StatusInternalServerError, "Something went wrong saving the cafe.")
		return
	}

	log.Info().Int64("id", cafe.ID).Str("name", cafe.Name).Msg("cafe added")
	redirectHome(c, cafeAddedMessage)
}

// Delete handles POST /cafe/:id/delete requests. Authorization happens in middleware.
func (h *CafeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderError(c, http.StatusNotFound, "That cafe does not exist.")
		return
	}

	cafe, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			renderError(c, http.StatusNotFound, "That cafe does not exist.")
			return
		}

		log.Error().Err(err).Int64("id", id).Msg("failed to delete cafe")
		renderError(c, http.StatusInternalServerError, "Something went wrong removing the cafe.")
		return
	}

	log.Info().Int64("id", cafe.ID).Str("name", cafe.Name).Msg("cafe removed")
	redirectHome(c, fmt.Sprintf(`"%s" has been removed.`, cafe.Name))
}
