package cmd

import (
	"fmt"
	"os"

	"artist-site/database"
	"artist-site/internal/domain/content"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Insert content from a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		seed, err := content.LoadSeed(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		database.InitDB()
		if err := seed.Apply(cmd.Context(), database.DB); err != nil {
			return fmt.Errorf("seed %s: %w", args[0], err)
		}
		log.Info().Str("file", args[0]).Int("biographies", len(seed.Biographies)).Msg("✅ Seed applied")
		return nil
	},
}
