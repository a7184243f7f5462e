package geocoder

import (
	"context"
	"fmt"

	"workbrew/internal/models"

	"github.com/rs/zerolog/log"
)

// Store is the part of the cafe repository the backfill needs.
type Store interface {
	FindMissingCoordinates(ctx context.Context) ([]models.Cafe, error)
	UpdateCoordinates(ctx context.Context, id int64, coords models.Coordinates) error
	CountCafes(ctx context.Context) (total, mapped int64, err error)
}

// Geocoder resolves a cafe to coordinates. A nil result means not found.
type Geocoder interface {
	Geocode(ctx context.Context, name, location string) (*models.Coordinates, error)
}

// Summary reports what a backfill run did.
type Summary struct {
	Missing int
	Updated int
	Skipped int
	Mapped  int64
	Total   int64
}

// Backfill geocodes every cafe without coordinates and stores the positions it finds.
// Cafes that cannot be resolved are skipped and keep a null position.
func Backfill(ctx context.Context, store Store, geo Geocoder) (Summary, error) {
	var summary Summary

	cafes, err := store.FindMissingCoordinates(ctx)
	if err != nil {
		return summary, fmt.Errorf("geocoder: failed to load cafes: %w", err)
	}
	summary.Missing = len(cafes)
	log.Info().Int("missing", summary.Missing).Msg("geocoding cafes without coordinates")

	for _, cafe := range cafes {
		coords, err := geo.Geocode(ctx, cafe.Name, cafe.Location)
		if err != nil {
			return summary, fmt.Errorf("geocoder: failed to geocode %q: %w", cafe.Name, err)
		}
		if coords == nil {
			summary.Skipped++
			log.Warn().Str("name", cafe.Name).Str("location", cafe.Location).Msg("not found, skipped")
			continue
		}

		if err := store.UpdateCoordinates(ctx, cafe.ID, *coords); err != nil {
			return summary, fmt.Errorf("geocoder: failed to save coordinates for %q: %w", cafe.Name, err)
		}
		summary.Updated++
		log.Info().
			Str("name", cafe.Name).
			Float64("lat", coords.Lat).
			Float64("lng", coords.Lng).
			Msg("geocoded")
	}

	summary.Total, summary.Mapped, err = store.CountCafes(ctx)
	if err != nil {
		return summary, fmt.Errorf("geocoder: failed to count cafes: %w", err)
	}

	return summary, nil
}
