package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/eringen/pagebuilder"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List stored projects",
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

		projects, err := store.ListProjects()
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no projects saved yet")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSAVED")
		for _, p := range projects {
			fmt.Fprintf(w, "%s\t%s\n", p.ID, humanize.Time(p.UpdatedAt))
		}
		return w.Flush()
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete ID...",
	Short: "Delete stored projects",
	Long: `Delete removes the stored snapshots of the given projects. Stop the
server first: a project that is still open in the editor is written back
on its next autosave.`,
	Args: cobra.MinimumNArgs(1),
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

		var errs []error
		for _, id := range args {
			err := store.DeleteProject(id)
			switch {
			case errors.Is(err, pagebuilder.ErrNotFound):
				errs = append(errs, fmt.Errorf("no project %s", id))
			case err != nil:
				errs = append(errs, fmt.Errorf("deleting %s: %w", id, err))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			}
		}
		return errors.Join(errs...)
	},
}

func init() {
	projectsCmd.AddCommand(projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}
