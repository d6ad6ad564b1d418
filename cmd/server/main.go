package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cipher-rooms/internal/app"
	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("cipher-rooms-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	application, err := app.NewApp(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	log.Info().Str("version", cfg.App.Version).Msg("server starting")
	if err = application.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
}
