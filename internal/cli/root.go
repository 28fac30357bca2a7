// Package cli holds the newsapi command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emilythestrangee/news-api/backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "newsapi",
	Short: "News REST API over PostgreSQL",
	Long: `newsapi serves topics, articles, comments and users over a JSON REST API.

Configuration comes from an optional YAML file (--config), then .env and the
process environment, which take precedence.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	// serve is also the default command, so both carry its flags.
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply the schema before serving")
	}

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
