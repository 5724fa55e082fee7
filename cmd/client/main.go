package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-company-directory/internal/adapter"
	"github.com/MKhiriev/go-company-directory/internal/client"
	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/tui"
	"github.com/MKhiriev/go-company-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("company-directory-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	localStorages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}

	services := service.NewClientServices(localStorages, serverAdapter, log)
	ui := tui.New(services, buildInfo, log)
	app := client.NewApp(services, ui, os.Args[1:], os.Stdout, os.Stderr, log)

	runErr := app.Run()
	if err = localStorages.Close(); err != nil {
		log.Err(err).Msg("error closing local storage")
	}
	if runErr != nil {
		log.Err(runErr).Msg("client command failed")
		fmt.Fprintln(os.Stderr, service.UserMessage(runErr))
		os.Exit(1)
	}
}
