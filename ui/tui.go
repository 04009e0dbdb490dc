package ui

import (
	"context"
	"errors"

	"procwatch/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or ctx is
// cancelled. When configPath is set, edits to it are applied live.
func Run(ctx context.Context, opts Options, configPath string) error {
	m := NewModel(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if configPath != "" {
		err := config.Watch(ctx, configPath, opts.Logger, func(cfg *config.Config) {
			p.Send(configMsg{cfg: cfg})
		})
		if err != nil {
			opts.Logger.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
