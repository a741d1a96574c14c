package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/trackslat/trackslat/api/auth"
	"github.com/trackslat/trackslat/config"
	"github.com/trackslat/trackslat/database"
)

// Like the admin route, this applies none of the registration validation.
var createUserCmd = &cobra.Command{
	Use:     "create-user <username> <email> <password> <role>",
	Short:   "Create a user account directly in the database",
	Example: `trackslat create-user jack jack@tracks.lat hunter22222 admin`,
	Args:    cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		username, email, password, role := args[0], args[1], args[2], args[3]

		cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := database.New(cmd.Context(), cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		passwordHash, err := auth.HashPassword(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		id, err := db.CreateUser(cmd.Context(), username, email, passwordHash, role)
		if err != nil {
			log.Fatalf("failed to create user: %v", err)
		}

		log.Info("created user", "username", username, "id", id)
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)
}
