package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"alphaya/internal/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := alphaya(); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func alphaya() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
