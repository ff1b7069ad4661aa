// Package main provides the rcsync CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"resource_catalog/internal/config"
	"resource_catalog/internal/container"
	"resource_catalog/internal/publisher"
	"resource_catalog/internal/service"
	"resource_catalog/internal/storage/index"
	"resource_catalog/internal/transport"
)

var (
	// configPath is set by the --config flag.
	configPath string

	cfg    *config.Config
	logger *slog.Logger

	// Opened on demand by openIndexer and released by run.
	store  *index.Store
	broker *publisher.RabbitMQ
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command line and releases whatever it opened. Cobra
// skips post-run hooks when a command fails, so release happens here.
func run(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if releaseErr := release(); err == nil {
		err = releaseErr
	}
	return err
}

var rootCmd = &cobra.Command{
	Use:   "rcsync",
	Short: "rcsync keeps a local resource catalog index in sync",
	Long: `rcsync crawls the legacy content API into a local index, downloads
resource containers referenced by the index and reports which local
containers have newer content available.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(updatesCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(watchCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = setupLogger(cfg.LogLevel)
	return nil
}

// openIndexer connects to the index and, when configured, the broker.
func openIndexer(cmd *cobra.Command) (*service.Indexer, error) {
	var err error
	store, err = index.Open(cmd.Context(), index.Config{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	// A nil *RabbitMQ must not reach the indexer as a non-nil interface.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled() {
		broker, err = publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		events = broker
	}

	client := transport.New(transport.Config{
		Timeout:           cfg.API.Timeout,
		MaxAttempts:       cfg.API.Retry.MaxAttempts,
		InitialBackoff:    cfg.API.Retry.InitialBackoff,
		MaxBackoff:        cfg.API.Retry.MaxBackoff,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	}, logger)

	return service.NewIndexer(client, index.NewRepository(store), events, logger, service.Config{
		RootURL:       cfg.API.RootCatalogURL,
		ContainersDir: cfg.Storage.ContainersDir,
		Container:     container.Options{Compression: cfg.Container.Compression},
	}), nil
}

func release() error {
	var firstErr error
	if broker != nil {
		if err := broker.Close(); err != nil {
			firstErr = fmt.Errorf("close publisher: %w", err)
		}
		broker = nil
	}
	if store != nil {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close index: %w", err)
		}
		store = nil
	}
	return firstErr
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
