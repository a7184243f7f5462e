package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"workbrew/internal/config"
	"workbrew/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "workbrew",
	Short: "WorkBrew - a directory of work-friendly cafes",
	Long: `WorkBrew lists cafes that are good to work from, lets visitors filter and
submit them, and lets an admin remove listings.

Configuration is read from the environment, an optional .env file and
an optional app.env under --config-path.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err == nil {
			log.Debug().Msg("loaded .env")
		}

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}

		setupLogger(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "./configs", "directory containing app.env")
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// openStore connects to Postgres and makes sure the schema exists.
func openStore(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBSchema)
	if err != nil {
		return nil, err
	}

	if err := database.Bootstrap(ctx, pool, cfg.DBSchema); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("workbrew failed")
	}
}
