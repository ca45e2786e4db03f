package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/mastermind/config"
	"github.com/domino14/mastermind/game"
	"github.com/domino14/mastermind/stats"
)

const maxListedCodes = 20

var errNoGame = errors.New("no game in progress; type `new` to start one")

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) newGame() error {
	g, err := game.NewGame(sc.rules, sc.src)
	if err != nil {
		return err
	}
	sc.game = g
	return nil
}

// finishGame records a game that just ended and describes the outcome.
func (sc *ShellController) finishGame() string {
	won := sc.game.PlayState() == game.Won
	sc.session.Record(won, sc.game.AttemptsUsed())
	log.Info().Str("gid", sc.game.Uid()).Str("result", sc.game.PlayState().String()).
		Int("attempts", sc.game.AttemptsUsed()).Msg("game-over")

	if won {
		return fmt.Sprintf("You cracked the code in %d attempt(s)!\nType `new` to play again.",
			sc.game.AttemptsUsed())
	}
	secret, err := sc.game.Secret()
	if err != nil {
		// Unreachable: the game is over.
		return err.Error()
	}
	return fmt.Sprintf("Out of luck. The code was: Code - %s\nType `new` to play again.",
		secret.String())
}

func (sc *ShellController) startNew(cmd *shellcmd) (*Response, error) {
	var prefix string
	if sc.game != nil && sc.game.Playing() && sc.game.AttemptsUsed() > 0 {
		if err := sc.game.Resign(); err != nil {
			return nil, err
		}
		prefix = sc.finishGame() + "\n"
	}
	if err := sc.newGame(); err != nil {
		return nil, err
	}
	return msg(prefix + "New game: " + sc.rules.String()), nil
}

func (sc *ShellController) guess(line string) (*Response, error) {
	if sc.game == nil || !sc.game.Playing() {
		return nil, errNoGame
	}
	code, err := parseGuess(line, sc.game.Rules())
	if err != nil {
		return nil, err
	}
	turn, err := sc.game.PlayGuess(code)
	if err != nil {
		return nil, err
	}
	out := fmt.Sprintf("%d: %s  Response - %s", turn.Number, turn.Guess.String(), turn.Score.String())
	if !sc.game.Playing() {
		out += "\n" + sc.finishGame()
	}
	return msg(out), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(strings.TrimRight(sc.game.ToDisplayText(), "\n")), nil
}

func (sc *ShellController) remaining(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	codes, err := game.ConsistentCodes(sc.game.Rules(), sc.game.History())
	if err != nil {
		return nil, err
	}
	out := sc.printer.Sprintf("%d of %d codes are still possible.", len(codes), sc.game.Rules().NumCodes())
	if cmd.options.Bool("list") {
		limit, err := cmd.options.IntDefault("max", maxListedCodes)
		if err != nil {
			return nil, err
		}
		if limit < 0 {
			return nil, fmt.Errorf("-max must not be negative, got %d", limit)
		}
		for i, c := range codes {
			if i == limit {
				out += fmt.Sprintf("\n... and %d more", len(codes)-limit)
				break
			}
			out += "\n" + c.Compact()
		}
	}
	return msg(out), nil
}

func (sc *ShellController) giveup(cmd *shellcmd) (*Response, error) {
	if sc.game == nil || !sc.game.Playing() {
		return nil, errNoGame
	}
	if err := sc.game.Resign(); err != nil {
		return nil, err
	}
	return msg(sc.finishGame()), nil
}

func (sc *ShellController) rulesText() string {
	text := "Next game: " + sc.rules.String()
	if sc.game != nil && sc.game.Playing() && sc.game.Rules() != sc.rules {
		text = "This game: " + sc.game.Rules().String() + "\n" + text
	}
	return text
}

var settableInts = map[string]func(r *game.Rules) *int{
	config.ConfigCodeLength:  func(r *game.Rules) *int { return &r.CodeLength },
	config.ConfigMaxDigit:    func(r *game.Rules) *int { return &r.MaxDigit },
	config.ConfigMaxAttempts: func(r *game.Rules) *int { return &r.MaxAttempts },
}

// set changes a rule for the games that follow; the game in progress is
// left alone.
func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <code-length|max-digit|max-attempts|seed> <value>")
	}
	key, val := cmd.args[0], cmd.args[1]

	if key == config.ConfigSeed {
		seed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, err
		}
		sc.src = game.NewSource(seed)
		sc.config.Set(key, seed)
		return msg("set seed to " + val), nil
	}

	field, ok := settableInts[key]
	if !ok {
		return nil, fmt.Errorf("cannot set %v", key)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	rules := sc.rules
	*field(&rules) = n
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	sc.rules = rules
	sc.config.Set(key, n)
	log.Debug().Str("key", key).Int("value", n).Msg("set-rule")
	return msg(fmt.Sprintf("set %v to %d; takes effect with the next game", key, n)), nil
}

func (sc *ShellController) sessionStats(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	sb.WriteString(sc.session.Summary(stats.DefaultConfidence))
	if len(cmd.args) > 0 && cmd.args[0] == "hist" {
		if err := sc.session.Histogram(&sb); err != nil {
			return nil, err
		}
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}
