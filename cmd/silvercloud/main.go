package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/silvercloudhq/silvercloud-cli/api"
	"github.com/silvercloudhq/silvercloud-cli/app"
	"github.com/silvercloudhq/silvercloud-cli/credentials"
	"github.com/silvercloudhq/silvercloud-cli/gateway"
	"github.com/silvercloudhq/silvercloud-cli/guard"
	"github.com/silvercloudhq/silvercloud-cli/identity"
	"github.com/silvercloudhq/silvercloud-cli/internal/config"
	"github.com/silvercloudhq/silvercloud-cli/sessions"
	"github.com/silvercloudhq/silvercloud-cli/views"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("silvercloud failed to start")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		// Missing identity settings are fatal: nothing works without them.
		return err
	}
	setupLogging(cfg.Env)
	displayAppname("Silvercloud")

	credPath := cfg.CredentialsFile
	if credPath == "" {
		if credPath, err = credentials.DefaultPath(); err != nil {
			return err
		}
	}
	store := credentials.NewFileStore(credPath)
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	idClient := identity.New(cfg.IdentityURL, cfg.IdentityAnonKey, httpClient)
	manager := sessions.NewManager(store, idClient, log.Logger)
	gw := gateway.New(cfg.BackendURL, httpClient)
	apiClient := api.NewClient(cfg.BackendURL, store, httpClient, log.Logger)

	ctx := context.Background()
	manager.Bootstrap(ctx)

	in := bufio.NewReader(os.Stdin)
	login := views.NewLoginView(gw, manager, in)

	shell := app.NewShell(guard.New(manager, "/", "/login"), manager, login, in, os.Stdout, log.Logger)
	shell.Route("/", views.NewHomeView())
	shell.Route("/login", login)
	shell.Route("/dashboard", views.NewDashboardView(manager))
	shell.Route("/program", views.NewProgramView(apiClient))
	shell.Route("/assessments", views.NewAssessmentsView(apiClient))
	shell.Route("/progress", views.NewProgressView(apiClient))
	shell.Route("/messages", views.NewMessagesView(apiClient, "user-456"))
	shell.Route("/assets", views.NewAssetsView(apiClient))
	shell.Route("/caseload", views.NewCaseloadView(apiClient))

	shell.Run(ctx)
	return nil
}

func setupLogging(env string) {
	if env == "local" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
