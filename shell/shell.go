// Package shell implements the interactive letterbox prompt.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/letterbox/config"
	"github.com/domino14/letterbox/dictionary"
	"github.com/domino14/letterbox/puzzle"
	"github.com/domino14/letterbox/solver"
)

var errQuit = errors.New("quit")

type ShellController struct {
	l   *readline.Instance
	out io.Writer
	cfg *config.Config

	words []string
	puz   *puzzle.Puzzle
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewShellController sets up the readline prompt.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mletterbox>\033[0m ",
		HistoryFile:     "/tmp/letterbox_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, out: l.Stderr(), cfg: cfg}
}

// newController is the readline-free core, used by tests.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	return &ShellController{out: out, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sc.Execute(line); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting shell loop")
}

// Execute runs a single shell command line.
func (sc *ShellController) Execute(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "puzzle":
		return sc.setPuzzle(args)
	case "dict":
		return sc.loadDict(args)
	case "solve":
		return sc.solve(args)
	case "validate":
		return sc.validate(args)
	case "set":
		return sc.set(args)
	case "show":
		return sc.show()
	case "help":
		sc.usage()
		return nil
	case "exit", "quit":
		return errQuit
	}
	return fmt.Errorf("unknown command %q; try `help`", cmd)
}

func (sc *ShellController) setPuzzle(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: puzzle <sides...> [max words]")
	}
	maxWords := sc.cfg.GetInt("max-words")
	if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
		maxWords = n
		args = args[:len(args)-1]
	}
	p, err := puzzle.NYTFromString(maxWords, strings.Join(args, " "))
	if err != nil {
		return err
	}
	sc.puz = p
	sc.showMessage(fmt.Sprintf("puzzle set: %v (max %d words)",
		p, p.MaxWords()))
	return nil
}

func (sc *ShellController) loadDict(args []string) error {
	path := sc.cfg.GetString("dictionary-path")
	if len(args) > 0 {
		path = args[0]
	}
	words, err := dictionary.LoadWordsFile(path)
	if err != nil {
		return err
	}
	sc.words = words
	sc.showMessage(fmt.Sprintf("loaded %d words from %s", len(words), path))
	return nil
}

func (sc *ShellController) solve(args []string) error {
	if sc.puz == nil {
		return errors.New("please set a puzzle first with the `puzzle` command")
	}
	if sc.words == nil {
		if err := sc.loadDict(nil); err != nil {
			return err
		}
	}
	name := sc.cfg.GetString("strategy")
	if len(args) > 0 {
		name = args[0]
	}
	var strat solver.Strategy
	if name == "astar" && sc.cfg.GetInt("edge-weight") != 0 {
		strat = solver.NewAStarWeighted(sc.words, sc.cfg.GetInt("edge-weight"))
	} else {
		var err error
		strat, err = solver.FromName(name, sc.words)
		if err != nil {
			return err
		}
	}
	log.Debug().Str("strategy", name).Msgf("solving %v", sc.puz)
	soln, ok := strat.Solve(sc.puz)
	if !ok {
		sc.showMessage("no solution found")
		return nil
	}
	sc.showMessage("SOLUTION: " + strings.Join(soln, " -> "))
	return nil
}

func (sc *ShellController) validate(args []string) error {
	if sc.puz == nil {
		return errors.New("please set a puzzle first with the `puzzle` command")
	}
	if len(args) == 0 {
		return errors.New("usage: validate <word> [word...]")
	}
	if err := sc.puz.ValidateSolution(args); err != nil {
		return err
	}
	sc.showMessage("solution is valid")
	return nil
}

func (sc *ShellController) set(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: set <key> <value>")
	}
	key, val := args[0], args[1]
	switch key {
	case "max-words", "edge-weight":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%s wants a number: %w", key, err)
		}
		sc.cfg.Set(key, n)
	case "strategy", "dictionary-path":
		sc.cfg.Set(key, val)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	sc.showMessage(key + " set to " + val)
	return nil
}

func (sc *ShellController) show() error {
	if sc.puz == nil {
		return errors.New("no puzzle set")
	}
	sc.showMessage(fmt.Sprintf("%v (max %d words)", sc.puz, sc.puz.MaxWords()))
	return nil
}

func (sc *ShellController) usage() {
	sc.showMessage("commands:")
	sc.showMessage("puzzle <sides> [max words] - set the current puzzle, e.g. puzzle erb uln imk jav 6")
	sc.showMessage("dict [path] - load a word list; defaults to the configured dictionary-path")
	sc.showMessage("solve [astar|predict|brute] - solve the current puzzle")
	sc.showMessage("validate <word...> - check a candidate solution against the rules")
	sc.showMessage("set <key> <value> - change a setting (max-words, edge-weight, strategy, dictionary-path)")
	sc.showMessage("show - display the current puzzle")
	sc.showMessage("exit - leave the shell")
}
