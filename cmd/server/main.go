package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sudoku-deduce/internal/storage"
	httpTransport "sudoku-deduce/internal/transport/http"
	"sudoku-deduce/pkg/config"
	"sudoku-deduce/pkg/constants"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open snapshot store")
	}

	r := gin.Default()
	httpTransport.RegisterRoutes(r, cfg, store)

	port := cfg.Port
	if port == "" {
		port = constants.DefaultPort
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", port).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// openStore picks Postgres when DATABASE_URL is set, the flat-file
// backend otherwise; both satisfy storage.Store identically.
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		log.Info().Msg("using postgres snapshot store")
		return storage.NewPostgresStore(context.Background(), cfg.DatabaseURL)
	}
	log.Info().Str("dir", cfg.SnapshotDir).Msg("using file snapshot store")
	return storage.NewFileStore(cfg.SnapshotDir)
}
