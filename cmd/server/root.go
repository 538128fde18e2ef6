package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kinewatch-api/internal/api"
	"github.com/kinewatch-api/internal/catalog"
	"github.com/kinewatch-api/internal/config"
	"github.com/kinewatch-api/internal/notion"
	"github.com/kinewatch-api/internal/repository"
	"github.com/kinewatch-api/internal/service"
	"github.com/kinewatch-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:           "kinewatch-api",
	Short:         "Physiotherapy article feed backed by a Notion database",
	Long:          "kinewatch-api serves a filtered, paginated article feed read from a Notion database whose column names and types may drift.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "directory containing config.yaml")

	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(articlesCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app is the dependency graph shared by every command
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	services *service.Services
}

func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.New(cfg.Log)

	client := notion.NewClient(&cfg.Notion, log)
	repos := repository.New(client, cfg.Notion.DatabaseID)
	services := service.NewServices(repos, log)

	return &app{cfg: cfg, log: log, services: services}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	log := a.log
	cfg := a.cfg
	log.Info().Msg("Starting article feed server...")

	if !cfg.Notion.HasCredential() {
		log.Warn().Msg("NOTION_API_KEY not configured, article requests will fail")
	}

	vocab, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	// Initialize router
	router := api.NewRouter(a.services, vocab, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("database_id", cfg.Notion.DatabaseID).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}
