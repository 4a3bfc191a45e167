package cmd

import (
	"artist-site/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the content tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.InitDB()
		return nil
	},
}
