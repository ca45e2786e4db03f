package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/mastermind/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct{}

func NewShellCompleter() *ShellCompleter {
	return &ShellCompleter{}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"remaining": {
		Options: []string{"-list", "-max"},
	},
	"set": {
		Args: []string{config.ConfigCodeLength, config.ConfigMaxDigit,
			config.ConfigMaxAttempts, config.ConfigSeed},
	},
	"stats": {
		Args: []string{"hist"},
	},
	"help": {
		Args: []string{"guess", "remaining", "set", "stats"},
	},
}

var commandNames = []string{
	"guess", "new", "history", "show", "remaining", "giveup", "rules", "set",
	"stats", "config", "help", "version", "exit",
}

var boolValues = []string{"true", "false"}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}
		if lastCompleteField == "-list" {
			completions = boolValues
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else if len(fields) == 1 || (len(fields) == 2 && !endsWithSpace) {
					// Only the first argument is completed.
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
