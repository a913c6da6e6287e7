package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/agenda/internal/update"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "agenda failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}
	cfg, err := update.LoadRuntimeConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := update.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "backend", cfg.Backend, "task_file", cfg.TaskFile, "start_mode", cfg.StartMode)

	store, closeStore, err := update.OpenStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("open store", "err", err)
		return err
	}
	defer closeStore()

	program := tea.NewProgram(update.NewModel(store, cfg, logger), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(update.Model); ok && m.Err != nil {
		return m.Err
	}
	logger.Info("session ended", "tasks", store.Len())
	return nil
}
