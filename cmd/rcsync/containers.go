package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <language> <project> <resource>",
	Short: "Extract a downloaded container for editing",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexer, err := openIndexer(cmd)
		if err != nil {
			return err
		}
		c, err := indexer.OpenContainer(args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("open container: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), c.Path())
		return nil
	},
}

var closeCmd = &cobra.Command{
	Use:   "close <language> <project> <resource>",
	Short: "Pack an open container back into its archive",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		indexer, err := openIndexer(cmd)
		if err != nil {
			return err
		}
		archive, err := indexer.CloseContainer(args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("close container: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), archive)
		return nil
	},
}
