package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/pagebuilder"
	"github.com/eringen/pagebuilder/export"
	"github.com/eringen/pagebuilder/page"
)

var (
	exportProject string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a stored project as a landing page ZIP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store, err := pagebuilder.NewStore(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer store.Close()

		data, saved, err := store.LoadSnapshot(exportProject)
		if errors.Is(err, pagebuilder.ErrNotFound) {
			return fmt.Errorf("project %s not found", exportProject)
		}
		if err != nil {
			return err
		}
		doc, err := page.Deserialize(data)
		if err != nil {
			return fmt.Errorf("project %s: %w", exportProject, err)
		}

		archive, err := export.Archive(context.Background(), doc, saved)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportOut, archive, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportProject, "project", "", "project id to export")
	exportCmd.Flags().StringVar(&exportOut, "out", export.ArchiveName, "output file")
	_ = exportCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(exportCmd)
}
