// The letterbox binary solves Letter Boxed puzzles. With positional
// arguments it solves one puzzle and exits:
//
//	letterbox [flags] "erb uln imk jav" 6
//
// With no positional arguments it starts the interactive shell.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/letterbox/config"
	"github.com/domino14/letterbox/dictionary"
	"github.com/domino14/letterbox/puzzle"
	"github.com/domino14/letterbox/shell"
	"github.com/domino14/letterbox/solver"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	args := cfg.Args()
	switch len(args) {
	case 0:
		shell.NewShellController(cfg).Loop()
	case 2:
		if err := solveOnce(cfg, args[0], args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr,
			`usage: letterbox [flags] "<puzzle string>" <max # of words>`)
		os.Exit(2)
	}
}

func solveOnce(cfg *config.Config, puzzStr, maxWordsStr string) error {
	maxWords, err := strconv.Atoi(maxWordsStr)
	if err != nil {
		return fmt.Errorf("max words must be a number: %w", err)
	}
	p, err := puzzle.NYTFromString(maxWords, puzzStr)
	if err != nil {
		return fmt.Errorf("invalid puzzle: %w", err)
	}
	words, err := dictionary.LoadWordsFile(cfg.GetString("dictionary-path"))
	if err != nil {
		return err
	}

	name := cfg.GetString("strategy")
	var strat solver.Strategy
	if name == "astar" && cfg.GetInt("edge-weight") != 0 {
		strat = solver.NewAStarWeighted(words, cfg.GetInt("edge-weight"))
	} else {
		strat, err = solver.FromName(name, words)
		if err != nil {
			return err
		}
	}

	log.Debug().Str("strategy", name).Msgf("PUZZLE: %v", p)
	soln, ok := strat.Solve(p)
	if !ok {
		fmt.Println("no solution found")
		return nil
	}
	fmt.Printf("PUZZLE: %v\n", p)
	fmt.Printf("SOLUTION: %v\n", strings.Join(soln, " -> "))
	return nil
}
