package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/Thiccblique/Tusday.com/internal/auth"
	"github.com/Thiccblique/Tusday.com/internal/config"
	"github.com/Thiccblique/Tusday.com/internal/database"
	"github.com/Thiccblique/Tusday.com/internal/repository"
	"github.com/Thiccblique/Tusday.com/internal/session"
	"github.com/Thiccblique/Tusday.com/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("tusday %s (commit: %s)\n", version, commit)
		os.Exit(0)
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns every handle it opens, so its defers run before main exits.
func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tusday needs an interactive terminal")
	}

	// Keep log output off the alternate screen.
	logFile, err := tea.LogToFile("tusday.log", "tusday")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	creds := auth.NewCredentialStore(repository.NewUserRepository(db), auth.BcryptHasher{Cost: cfg.BcryptCost})
	app := ui.NewApp(context.Background(), creds, session.GormStores(db))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}
