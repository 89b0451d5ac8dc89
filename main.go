package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/experiments"
	"reversi/searcher"
	"reversi/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address for the play server")
	difficultyName := flag.String("difficulty", "intermediate", "default AI difficulty: beginner, intermediate, advanced or expert")
	experiment := flag.Bool("experiment", false, "run the tier strength experiment instead of serving")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *experiment {
		if err := experiments.RunTierStrength(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	difficulty, err := searcher.ParseDifficulty(*difficultyName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid difficulty")
	}

	if err := server.New(difficulty).Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
