package cli

import (
	"github.com/spf13/cobra"

	"github.com/emilythestrangee/news-api/backend/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and indexes",
	Long: `Create missing tables and indexes, then exit. Existing tables are
left untouched, so running it twice is harmless.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.New(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		return db.Migrate(cmd.Context())
	},
}
