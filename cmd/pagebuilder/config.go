package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/pagebuilder"
)

var (
	configOut   string
	configForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configOut); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configOut)
		}
		cfg := pagebuilder.DefaultConfig()
		if err := cfg.Save(configOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s; set session_secret or %sSESSION_SECRET before serving\n",
			configOut, pagebuilder.EnvPrefix)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&configOut, "out", "pagebuilder.yml", "file to write")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
