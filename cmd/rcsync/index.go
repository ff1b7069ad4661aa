package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"resource_catalog/internal/storage/index"
)

var forceIndex bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the local index from the root catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := prepareIndexFile(cfg.Database.Driver, cfg.Database.Path, forceIndex); err != nil {
			return err
		}

		indexer, err := openIndexer(cmd)
		if err != nil {
			return err
		}

		stats, err := indexer.BuildIndex(cmd.Context(), cfg.API.RootCatalogURL, stageProgress(cmd.ErrOrStderr()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("build index: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "languages:        %d\n", stats.Languages)
		fmt.Fprintf(out, "projects:         %d\n", stats.Projects)
		fmt.Fprintf(out, "resources:        %d\n", stats.Resources)
		fmt.Fprintf(out, "catalogs:         %d\n", stats.Catalogs)
		fmt.Fprintf(out, "target languages: %d\n", stats.TargetLanguages)
		fmt.Fprintf(out, "questionnaires:   %d\n", stats.Questionnaires)
		fmt.Fprintf(out, "chunk markers:    %d\n", stats.ChunkMarkers)
		fmt.Fprintf(out, "skipped:          %d\n", stats.Skipped)
		fmt.Fprintf(out, "took:             %s\n", stats.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	indexCmd.Flags().BoolVar(&forceIndex, "force", false, "discard an existing index file and rebuild it")
}

// prepareIndexFile refuses to overwrite an existing sqlite index unless
// force is set, in which case the old file is removed.
func prepareIndexFile(driver, path string, force bool) error {
	if driver != index.DriverSQLite {
		return nil
	}
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("stat index: %w", err)
	case !force:
		return fmt.Errorf("index %s already exists, use --force to rebuild it", path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove index: %w", err)
	}
	return nil
}
