package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/domino14/mastermind/config"
	"github.com/domino14/mastermind/game"
	"github.com/domino14/mastermind/stats"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("sending quit signal")
)

type ShellController struct {
	l       *readline.Instance
	out     io.Writer
	printer *message.Printer

	config     *config.Config
	gitVersion string

	// rules for the next game; the current game keeps its own copy.
	rules   game.Rules
	src     game.Source
	game    *game.Game
	session *stats.Session
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController sets up the readline instance and starts the first
// game.
func NewShellController(cfg *config.Config, gitVersion string) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(nil),
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc, err := newController(cfg, gitVersion, l.Stderr())
	if err != nil {
		l.Close()
		return nil, err
	}
	sc.l = l
	sc.l.SetPrompt(prompt(sc.game))
	return sc, nil
}

func newController(cfg *config.Config, gitVersion string, out io.Writer) (*ShellController, error) {
	sc := &ShellController{
		out:        out,
		printer:    message.NewPrinter(language.English),
		config:     cfg,
		gitVersion: gitVersion,
		rules:      cfg.Rules(),
		src:        game.NewSource(cfg.GetInt64(config.ConfigSeed)),
		session:    &stats.Session{},
	}
	if err := sc.newGame(); err != nil {
		return nil, err
	}
	return sc, nil
}

func prompt(g *game.Game) string {
	if g == nil || !g.Playing() {
		return "\033[31mmastermind>\033[0m "
	}
	return fmt.Sprintf("\033[31mmastermind [%d/%d]>\033[0m ",
		g.AttemptsUsed()+1, g.Rules().MaxAttempts)
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}

	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{
		cmd:     cmd,
		args:    args,
		options: options,
	}, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	// A line that starts with a digit is a guess; nothing else does.
	if line != "" && line[0] >= '0' && line[0] <= '9' {
		return sc.guess(line)
	}

	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "guess", "g":
		return sc.guess(strings.TrimSpace(line[len(cmd.cmd):]))
	case "new":
		return sc.startNew(cmd)
	case "history", "show", "s":
		return sc.show(cmd)
	case "remaining":
		return sc.remaining(cmd)
	case "giveup", "resign":
		return sc.giveup(cmd)
	case "rules":
		return msg(sc.rulesText()), nil
	case "set":
		return sc.set(cmd)
	case "stats":
		return sc.sessionStats(cmd)
	case "config":
		return msg(strings.TrimRight(sc.config.ToDisplayText(), "\n")), nil
	case "help":
		if cmd.args == nil {
			return usage("standard")
		}
		return usageTopic(cmd.args[0])
	case "version":
		return msg("mastermind " + sc.gitVersion), nil
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errQuit
	default:
		log.Debug().Msgf("command %q not found", cmd.cmd)
		return nil, fmt.Errorf("command %v not found; try `help`", cmd.cmd)
	}
}

// Execute runs a single command line, as given on the command line of the
// program instead of interactively.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(strings.TrimSpace(line), sig)
	if err != nil {
		if !errors.Is(err, errQuit) {
			sc.showError(err)
		}
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	sc.showMessage(sc.welcome())

	for {
		sc.l.SetPrompt(prompt(sc.game))
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		resp, err := sc.standardModeSwitch(line, sig)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			// Bad input is never fatal: show it and prompt again.
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) welcome() string {
	return fmt.Sprintf("Guess the secret code: %s.\n"+
		"Type your guess (e.g. %s), or `help` for more commands.",
		sc.rules.String(), exampleGuess(sc.rules))
}

func (sc *ShellController) Cleanup() {
	if sc.l != nil {
		sc.l.Close()
	}
	log.Info().Int("played", sc.session.Played()).Int("won", sc.session.Won()).
		Msg("session-over")
}
