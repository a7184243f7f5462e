package main

import (
	"workbrew/internal/geocoder"
	"workbrew/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode",
	Short: "Fill in map coordinates for cafes that have none",
	Long: `Looks up every cafe without coordinates on Nominatim (one request per second)
and stores the positions it finds. Cafes that cannot be found keep a null position.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		client := geocoder.NewNominatimClient(geocoder.Options{
			BaseURL:     cfg.NominatimURL,
			UserAgent:   cfg.GeocodeUserAgent,
			Region:      cfg.GeocodeRegion,
			CountryCode: cfg.GeocodeCountry,
		})

		summary, err := geocoder.Backfill(cmd.Context(), repository.NewRepository(pool), client)
		if err != nil {
			return err
		}

		log.Info().
			Int("missing", summary.Missing).
			Int("updated", summary.Updated).
			Int("skipped", summary.Skipped).
			Int64("mapped", summary.Mapped).
			Int64("total", summary.Total).
			Msg("geocoding complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}
