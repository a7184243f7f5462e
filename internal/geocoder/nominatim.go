// Package geocoder fills in map positions for cafes using the Nominatim search API.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"workbrew/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL     = "https://nominatim.openstreetmap.org"
	DefaultUserAgent   = "WorkBrew/1.0 (portfolio project, no commercial use)"
	DefaultRegion      = "London, UK"
	DefaultCountryCode = "gb"
)

// Options configures a NominatimClient. Empty fields fall back to the defaults above.
type Options struct {
	BaseURL     string
	UserAgent   string
	Region      string
	CountryCode string
	HTTPClient  *http.Client
	// Limiter paces outgoing requests. Nominatim's usage policy allows one per second.
	Limiter *rate.Limiter
}

// NominatimClient resolves a cafe name and neighbourhood to coordinates.
type NominatimClient struct {
	baseURL     string
	userAgent   string
	region      string
	countryCode string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

type searchResult struct {
	Lat float64 `json:"lat,string"`
	Lon float64 `json:"lon,string"`
}

// NewNominatimClient creates a client with opts applied over the defaults.
func NewNominatimClient(opts Options) *NominatimClient {
	c := &NominatimClient{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		userAgent:   opts.UserAgent,
		region:      opts.Region,
		countryCode: opts.CountryCode,
		httpClient:  opts.HTTPClient,
		limiter:     opts.Limiter,
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.region == "" {
		c.region = DefaultRegion
	}
	if c.countryCode == "" {
		c.countryCode = DefaultCountryCode
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Every(time.Second), 1)
	}

	return c
}

// Geocode tries the cafe itself first and falls back to its neighbourhood.
// It returns nil coordinates when neither query finds anything.
func (c *NominatimClient) Geocode(ctx context.Context, name, location string) (*models.Coordinates, error) {
	for _, query := range c.queries(name, location) {
		coords, err := c.search(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn().Err(err).Str("query", query).Msg("geocoder: request failed")
			continue
		}
		if coords != nil {
			return coords, nil
		}
	}

	return nil, nil
}

func (c *NominatimClient) queries(name, location string) []string {
	var queries []string
	if name != "" {
		queries = append(queries, fmt.Sprintf("%s, %s, %s", name, location, c.region))
	}
	return append(queries, fmt.Sprintf("%s, %s", location, c.region))
}

func (c *NominatimClient) search(ctx context.Context, query string) (*models.Coordinates, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", c.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geocoder: API returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoder: failed to decode JSON: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	return &models.Coordinates{Lat: results[0].Lat, Lng: results[0].Lon}, nil
}
