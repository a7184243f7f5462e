package handler

import (
	"context"
	"net/http"

	"workbrew/internal/models"
	"workbrew/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CafesResponse is the JSON body of GET /api/cafes
type CafesResponse struct {
	Cafes     []models.MapMarker `json:"cafes"`
	Locations []string           `json:"locations"`
	Count     int                `json:"count"`
}

// ErrorResponse is the JSON body of a failed API request
type ErrorResponse struct {
	Error string `json:"error"`
}

// APIHandler serves the JSON endpoints
type APIHandler struct {
	service CafeLister
}

// CafeLister interface for dependency injection
type CafeLister interface {
	List(ctx context.Context, filter models.CafeFilter) (*service.Listing, error)
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(svc CafeLister) *APIHandler {
	return &APIHandler{service: svc}
}

// ListCafes godoc
//
//	@Summary		List cafe map markers
//	@Description	Returns the map projection of every cafe matching the filters, ordered by name, plus every known location.
//	@Tags			cafes
//	@Produce		json
//	@Param			wifi		query		string	false	"any non-empty value requires WiFi"
//	@Param			sockets		query		string	false	"any non-empty value requires sockets"
//	@Param			calls		query		string	false	"any non-empty value requires that calls are allowed"
//	@Param			location	query		string	false	"exact location"
//	@Success		200			{object}	CafesResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/api/cafes [get]
func (h *APIHandler) ListCafes(c *gin.Context) {
	listing, err := h.service.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		log.Error().Err(err).Msg("failed to list cafes")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, CafesResponse{
		Cafes:     listing.Markers,
		Locations: listing.Locations,
		Count:     len(listing.Markers),
	})
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
