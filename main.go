package main

import (
	"artist-site/cmd"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("❌ artist-site failed")
	}
}
