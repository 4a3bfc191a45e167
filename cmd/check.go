package cmd

import (
	"fmt"

	"artist-site/database"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the stored content is complete enough to serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		database.InitDB()
		if err := checkDefaultBiography(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "content ok")
		return nil
	},
}
