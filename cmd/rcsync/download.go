package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"resource_catalog/internal/domain"
)

var (
	downloadLang     string
	downloadProject  string
	downloadResource string
	forceDownload    bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download resource containers referenced by the index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		indexer, err := openIndexer(cmd)
		if err != nil {
			return err
		}
		out, progress := cmd.OutOrStdout(), cmd.ErrOrStderr()

		if downloadResource != "" {
			if downloadLang == "" || downloadProject == "" {
				return errors.New("--resource requires --lang and --project")
			}
			label := downloadLang + "_" + downloadProject + "_" + downloadResource
			path, err := indexer.DownloadResourceContainer(cmd.Context(),
				downloadLang, downloadProject, downloadResource, forceDownload, byteProgress(progress, label))
			fmt.Fprintln(progress)
			if err != nil {
				return fmt.Errorf("download %s: %w", label, err)
			}
			fmt.Fprintln(out, path)
			return nil
		}

		result, err := indexer.DownloadResourceContainers(cmd.Context(), downloadLang, downloadProject, forceDownload,
			func(res domain.Resource, total, completed int64) {
				fmt.Fprintf(progress, "\r%s_%s_%s %s", res.LanguageSlug, res.ProjectSlug, res.Slug, formatTransfer(total, completed))
			})
		fmt.Fprintln(progress)
		if err != nil {
			return fmt.Errorf("download containers: %w", err)
		}
		for _, path := range result.Paths {
			fmt.Fprintln(out, path)
		}
		if result.Failed > 0 {
			return fmt.Errorf("%d of %d containers failed to download", result.Failed, result.Failed+len(result.Paths))
		}
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVar(&downloadLang, "lang", "", "limit to a source language")
	downloadCmd.Flags().StringVar(&downloadProject, "project", "", "limit to a project")
	downloadCmd.Flags().StringVar(&downloadResource, "resource", "", "download a single resource")
	downloadCmd.Flags().BoolVar(&forceDownload, "force", false, "replace archives already on disk")
}
