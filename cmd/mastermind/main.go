package main

import (
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/mastermind/config"
	"github.com/domino14/mastermind/shell"
)

var (
	GitVersion string
)

//go:embed mastermind.txt
var banner string

func main() {
	fmt.Println(banner)
	fmt.Println(GitVersion)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigTrace) {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		logger = zerolog.New(output).Level(zerolog.TraceLevel).With().Timestamp().Logger()
	} else if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		logger = zerolog.New(output).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	log.Debug().Msgf("Loaded config:\n%v", cfg.ToDisplayText())

	rules := cfg.Rules()
	if err := rules.Validate(); err != nil {
		log.Error().Err(err).Msg("bad-rules")
		os.Exit(2)
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(done)
	}()

	sc, err := shell.NewShellController(cfg, GitVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start shell")
	}

	// Positional arguments are run as a single command.
	line := strings.TrimSpace(strings.Join(cfg.Args(), " "))
	if line == "" {
		go sc.Loop(sig)
	} else {
		sc.Execute(sig, line)
		sig <- syscall.SIGINT
	}

	<-done
	sc.Cleanup()
}
