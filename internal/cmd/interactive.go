package cmd

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gitpet/gitpet/internal/config"
	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/style"
	"github.com/gitpet/gitpet/internal/tracker"
	"github.com/gitpet/gitpet/internal/tui"
	"github.com/gitpet/gitpet/internal/ui"
)

// runInteractive opens the live pet view with git tracking attached.
func runInteractive() error {
	if !ui.IsInteractive() {
		return errors.New("no terminal detected; use 'gitpet status' for one-shot output")
	}

	cfg, err := config.Load()
	if err != nil {
		style.PrintWarning("using default config: %v", err)
	}
	ui.ApplyTheme(cfg.Theme)

	now := time.Now()

	// The lock is held for the whole session; one process owns the pet.
	p, store, release, err := loadPet(now)
	if err != nil {
		return err
	}
	defer release()

	book := loadBook(store)

	roots := cfg.WatchRoots
	if len(roots) == 0 {
		roots = tracker.DefaultRoots()
	}
	repos := tracker.FindRepos(roots, cfg.MaxRepos)

	events := make(chan pet.Kind, 16)
	tr := tracker.New(repos, cfg.WatchInterval.Duration, func(kind pet.Kind) {
		select {
		case events <- kind:
		default:
		}
	})
	tr.Start()
	defer tr.Stop()

	model := tui.NewModel(p, book, repos,
		events, cfg.RefreshInterval.Duration, cfg.PollInterval.Duration)
	defer model.Stop()

	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running pet view: %w", err)
	}

	// Final flush; the pet keeps living while we are away.
	if err := p.Save(); err != nil {
		return err
	}
	fmt.Println(style.Dim.Render("Your pet is still alive in the background. Come back soon! 👋"))
	return nil
}
