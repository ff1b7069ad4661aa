package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"resource_catalog/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the index periodically until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		indexer, err := openIndexer(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				logger.Info("received shutdown signal", "signal", sig)
				cancel()
			case <-ctx.Done():
			}
		}()

		logger.Info("starting catalog watcher",
			"root_url", cfg.API.RootCatalogURL,
			"interval", cfg.Sync.Interval,
			"publishing", cfg.RabbitMQ.Enabled(),
		)

		sched := scheduler.NewScheduler(indexer, cfg.Sync.Interval, cfg.Sync.Timeout, logger)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scheduler: %w", err)
		}
		return nil
	},
}
