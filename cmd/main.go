package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"footy/cmd/config"
	"footy/internal/api"
	"footy/internal/apperr"
	"footy/internal/colors"
	"footy/internal/roster"
	"footy/internal/service"
)

const usage = "usage: footy [schedule|live|scores|teams|standings]"

func main() {
	fmt.Println("\nGlobal Football CLI\n============================")

	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	appConfig, err := config.ProvideAppConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load app configuration")
	}
	if appConfig.API.Key == "" {
		logger.Fatal().Msg("FOOTY_API_KEY is not set")
	}

	cmd, err := resolveCommand(os.Args, appConfig.DefaultCommand)
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	table, err := colors.Load(appConfig.Files.Colors)
	if err != nil {
		// Colors are decoration; a missing side file degrades to white.
		logger.Warn().Err(err).Msg("color table unavailable, rendering uncolored")
		table = nil
	}

	apiClient := api.New(appConfig.API, appConfig.Leagues)
	store := roster.NewStore(appConfig.Files.Roster)
	svc := service.New(apiClient, store, table, &logger, os.Stdin, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx, cmd); err != nil {
		logger.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, errorLine(cmd, err))
		os.Exit(1)
	}
}

func resolveCommand(args []string, fallback string) (service.Command, error) {
	if len(args) < 2 {
		return service.ParseCommand(fallback)
	}
	return service.ParseCommand(args[1])
}

// errorLine collapses any pipeline failure into the single human line the
// command prints; nothing is retried and nothing else is reported.
func errorLine(cmd service.Command, err error) string {
	switch {
	case apperr.IsTransport(err):
		return "Error from the API"
	case apperr.IsParse(err):
		if cmd == service.Standings {
			return "Error parsing standings"
		}
		return "Error parsing fixtures"
	}
	return err.Error()
}
