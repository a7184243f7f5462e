package main

import (
	"os"

	"workbrew/internal/models"
	"workbrew/internal/repository"
	"workbrew/internal/seed"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var catalogFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the starting cafe catalog into an empty database",
	Long: `Loads a YAML catalog (the built-in London catalog unless --file is given)
and inserts it only when the cafe table has no rows, so it is safe to run on every deploy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cafes, err := loadCatalog()
		if err != nil {
			return err
		}

		pool, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		inserted, err := repository.NewRepository(pool).SeedIfEmpty(cmd.Context(), cafes)
		if err != nil {
			return err
		}

		if inserted == 0 {
			log.Info().Msg("database already has cafes, skipping seed")
			return nil
		}
		log.Info().Int64("inserted", inserted).Msg("seeded cafes")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&catalogFile, "file", "", "path to a YAML catalog")
	rootCmd.AddCommand(seedCmd)
}

func loadCatalog() ([]models.Cafe, error) {
	if catalogFile == "" {
		return seed.DefaultCatalog()
	}

	f, err := os.Open(catalogFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return seed.LoadCatalog(f)
}
