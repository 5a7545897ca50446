package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	apphttp "github.com/ecosaathi/ecosaathi/internal/interfaces/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local view surface",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	a.log.Info().
		Str("env", a.cfg.App.Env).
		Str("app", a.cfg.App.Name).
		Str("backend", a.cfg.Backend.BaseURL).
		Msg("starting application")

	srv := fiber.New(fiber.Config{
		AppName:      a.cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	srv.Use(recover.New())

	srv.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": a.cfg.App.Name})
	})

	// A bad route table is a programming error; refuse to start on one.
	if err := apphttp.Router(srv, apphttp.RouterDeps{
		Store:   a.store,
		AuthUC:  a.authUC,
		ViewsUC: a.viewsUC,
	}); err != nil {
		a.log.Error().Err(err).Msg("route table misconfigured")
		return err
	}

	go func() {
		if err := srv.Listen(a.cfg.HTTP.Addr()); err != nil {
			a.log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("server shutdown")
	}

	a.log.Info().Msg("application stopped")
	return nil
}
