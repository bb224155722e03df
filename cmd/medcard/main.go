package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"medcard"
)

func main() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "medcard:", err)
		os.Exit(1)
	}
	dir := filepath.Join(home, ".medcard")

	cfg, err := medcard.LoadConfig(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "medcard: config:", err)
		os.Exit(1)
	}

	// the UI owns the terminal, so the log goes to a file in the data dir
	log, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "medcard:", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := medcard.NewFileStore(afero.NewOsFs(), cfg.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "medcard:", err)
		os.Exit(1)
	}

	ctrl := medcard.NewController(store, log).
		InitialGrid(cfg.InitialTherapies, cfg.InitialSessions)
	ctrl.Init()

	card := medcard.NewCard(ctrl,
		medcard.NewLanguageStore(store, cfg.Language, log),
		medcard.NewThemeStore(store, cfg.Theme, log),
		log)

	if _, err := tea.NewProgram(card, tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Fprintln(os.Stderr, "medcard:", err)
		os.Exit(1)
	}
}

func openLogger(cfg medcard.Config) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(filepath.Join(cfg.DataDir, "medcard.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()

	return log, func() { _ = f.Close() }, nil
}
