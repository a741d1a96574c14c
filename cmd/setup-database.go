package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/trackslat/trackslat/config"
	"github.com/trackslat/trackslat/database"
)

var setupDatabaseCmd = &cobra.Command{
	Use:   "setup-database",
	Short: "Create or update the database schema",
	Long:  `Run the schema migrations. Safe to run repeatedly, already applied migrations are skipped.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		log.Info("creating db schema...")
		if err := database.Migrate(cmd.Context(), cfg.PostgresDSN); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(setupDatabaseCmd)
}
