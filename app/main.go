package main

import (
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/AndreiStanimir/trie-shell-go/internal/config"
	"github.com/AndreiStanimir/trie-shell-go/internal/shell"
)

func main() {
	configPath := flag.StringP("config", "c", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load config")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}
	lvl, _ := cfg.Log.ZerologLevel()
	logger = logger.Level(lvl)
	log.Logger = logger

	sh := shell.New(os.Stdout,
		shell.WithLogger(logger),
		shell.WithErrorPrefix(cfg.Shell.ErrorPrefix),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Shell.Prompt,
		HistoryFile:     cfg.Shell.HistoryFile,
		AutoComplete:    sh.Completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open terminal")
	}

	log.Debug().Str("prompt", cfg.Shell.Prompt).Str("history", cfg.Shell.HistoryFile).Msg("Session started")
	err = sh.Run(rl)
	rl.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("Session failed")
	}
}
