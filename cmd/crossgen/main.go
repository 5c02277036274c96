package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossgen/config"
	"github.com/domino14/crossgen/grid"
	"github.com/domino14/crossgen/render"
	"github.com/domino14/crossgen/solver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.StructurePath == "" || cfg.WordsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: crossgen -structure <file> -words <file> [-output <file.png>]")
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	puzzle, err := grid.Load(cfg.StructurePath, cfg.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading puzzle")
	}
	log.Debug().Int("slots", len(puzzle.Slots)).Int("words", len(puzzle.Words)).
		Msg("loaded puzzle")

	assignment, err := solver.New(puzzle).Solve()
	if errors.Is(err, solver.ErrUnsatisfiable) {
		fmt.Println("No solution.")
		return
	} else if err != nil {
		log.Fatal().Err(err).Msg("solving")
	}

	fmt.Print(render.DisplayText(puzzle, assignment))
	if cfg.OutputPath != "" {
		if err := render.SavePNG(puzzle, assignment, cfg.OutputPath); err != nil {
			log.Fatal().Err(err).Msg("saving image")
		}
		log.Info().Str("file", cfg.OutputPath).Msg("saved image")
	}
}
