package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var updatesLang string

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "List downloaded containers with newer content in the index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		indexer, err := openIndexer(cmd)
		if err != nil {
			return err
		}

		updates, err := indexer.CheckUpdates(cmd.Context(), updatesLang)
		if err != nil {
			return fmt.Errorf("check updates: %w", err)
		}

		out := cmd.OutOrStdout()
		if updates.Empty() {
			fmt.Fprintln(out, "up to date")
			return nil
		}
		fmt.Fprintf(out, "source languages: %s\n", strings.Join(updates.SourceLanguages, ", "))
		fmt.Fprintf(out, "projects:         %s\n", strings.Join(updates.Projects, ", "))
		return nil
	},
}

func init() {
	updatesCmd.Flags().StringVar(&updatesLang, "lang", "", "limit project updates to a source language")
}
