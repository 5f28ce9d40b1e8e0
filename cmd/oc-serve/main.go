package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/envbind"
	"github.com/MKhiriev/oc-serve/internal/handler"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/ocserve"
	"github.com/MKhiriev/oc-serve/internal/plugins"
	"github.com/MKhiriev/oc-serve/internal/server"
	"github.com/MKhiriev/oc-serve/internal/workers"
	"github.com/MKhiriev/oc-serve/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	env := envbind.FromOS()

	bootLog := logger.NewLogger("oc-serve")
	cfg, err := config.GetStructuredConfig(env, os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, closer := logger.New("oc-serve", cfg.Log)
	defer closer.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.IssueToken != "" {
		token, err := ocserve.IssueToken(cfg.OCServe.Auth, cfg.IssueToken, cfg.TokenTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		fmt.Println(token.SignedString)
		return
	}

	catalog, err := plugins.NewCatalog(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error registering plugins")
	}

	if cfg.Describe {
		fmt.Println(plugins.Describe(catalog.Entries()))
		return
	}

	app, err := ocserve.New(cfg.OCServe, env, catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping orchestrator")
	}
	defer app.Close()

	handlers, err := handler.NewHandlers(app, cfg.OCServe, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	probe := workers.NewHealthProbe(app.Orchestrator, app.Deployment, app.Metrics, log, handlers)

	srv, err := server.NewServer(handlers, workers.NewWorkers(probe), cfg.OCServe, app.Deployment, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
