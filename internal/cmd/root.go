package cmd

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ecosaathi/ecosaathi/internal/application/auth"
	"github.com/ecosaathi/ecosaathi/internal/application/views"
	"github.com/ecosaathi/ecosaathi/internal/domain/repository"
	"github.com/ecosaathi/ecosaathi/internal/infrastructure/backend"
	"github.com/ecosaathi/ecosaathi/internal/infrastructure/localstore"
	"github.com/ecosaathi/ecosaathi/pkg/config"
	"github.com/ecosaathi/ecosaathi/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ecosaathi",
	Short: "EcoSaathi e-waste pickup client",
	Long: `ecosaathi is the local client for the EcoSaathi e-waste pickup service.
It holds one session per client instance, guards every view by role, and
talks to the remote EcoSaathi backend for authentication and view data.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app is the wired object graph shared by every command.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   repository.SessionStore
	authUC  *auth.UseCase
	viewsUC *views.UseCase
}

// bootstrap loads configuration and wires the object graph. Every command
// goes through here so the CLI and the HTTP surface share one store and one
// set of use cases.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	store := localstore.Open(cfg.Session.StatePath, cfg.Session.SealSecret, log)
	client := backend.NewClient(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second, log)

	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		authUC:  auth.NewUseCase(store, client, log),
		viewsUC: views.NewUseCase(client, log),
	}, nil
}
