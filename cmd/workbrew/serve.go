package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"workbrew/internal/auth"
	"workbrew/internal/repository"
	"workbrew/internal/server"
	"workbrew/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("SECRET_KEY is not set, sessions are signed with the development key")
	}

	creds := auth.Credentials{Username: cfg.AdminUser, Password: cfg.AdminPass}
	if !creds.Configured() {
		log.Warn().Msg("ADMIN_USER or ADMIN_PASS is empty, admin login is disabled")
	}

	pool, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize layers
	repo := repository.NewRepository(pool)
	cafeService := service.NewCafeService(repo)

	router, err := server.NewRouter(server.Dependencies{
		Cafes:       cafeService,
		Gate:        auth.NewGate(creds),
		Secret:      cfg.SecretKey,
		CORSOrigins: cfg.Origins(),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
