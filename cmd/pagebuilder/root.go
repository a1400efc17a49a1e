package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eringen/pagebuilder"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pagebuilder",
	Short: "A landing page builder served over HTTP",
	Long: `pagebuilder serves a browser editor for a single landing page:
page text, content sections with buttons, a color theme and an SEO
category. Drafts are autosaved to SQLite and can be downloaded as a ZIP
containing a standalone index.html.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is normal outside development.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "pagebuilder.yml", "config file path")
}

func loadConfig() (pagebuilder.Config, error) {
	return pagebuilder.LoadConfig(cfgFile)
}
