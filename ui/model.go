package ui

import (
	"context"
	"time"

	"procwatch/config"
	"procwatch/model"
	"procwatch/monitor"
	"procwatch/proc"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type Options struct {
	Provider       proc.Provider
	Interval       time.Duration
	MeasureElapsed bool
	NameWidth      int
	MaxRows        int
	Logger         zerolog.Logger
	// Overrides is applied to every reloaded config, so command-line
	// flags keep winning over the file.
	Overrides func(*config.Config)
}

// Model is the render loop. Update is the only place the cycle (and with it
// the previous-counter table) is touched.
type Model struct {
	ctx       context.Context
	provider  proc.Provider
	cycle     *monitor.Cycle
	logger    zerolog.Logger
	overrides func(*config.Config)

	state     ViewState
	seq       int
	inFlight  bool
	interval  time.Duration
	nameWidth int
	maxRows   int

	frame     monitor.Frame
	haveFrame bool

	table  table.Model
	width  int
	height int
}

func NewModel(ctx context.Context, opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = monitor.DefaultInterval
	}
	if opts.NameWidth <= 0 {
		opts.NameWidth = model.DefaultNameWidth
	}
	logger := opts.Logger.With().Str("component", "ui").Logger()

	t := table.New(
		table.WithColumns(columns(opts.NameWidth)),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(colorCyan)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{
		ctx:      ctx,
		provider: opts.Provider,
		cycle: monitor.NewCycle(monitor.Options{
			Interval:       opts.Interval,
			MeasureElapsed: opts.MeasureElapsed,
			Logger:         opts.Logger,
		}),
		logger:    logger,
		overrides: opts.Overrides,
		inFlight:  true, // Init's sample
		interval:  opts.Interval,
		nameWidth: opts.NameWidth,
		maxRows:   opts.MaxRows,
		table:     t,
	}
}

// State returns the current view state.
func (m Model) State() ViewState {
	return m.state
}

// Frame returns the last computed frame and whether there is one yet.
func (m Model) Frame() (monitor.Frame, bool) {
	return m.frame, m.haveFrame
}

func (m Model) Init() tea.Cmd {
	return m.sampleCmd()
}

func (m Model) sampleCmd() tea.Cmd {
	ctx, p, seq := m.ctx, m.provider, m.seq
	return func() tea.Msg {
		return samplesMsg{seq: seq, samples: monitor.Collect(ctx, p, nil)}
	}
}

// waitCmd is the bounded input wait at the end of an iteration.
func (m Model) waitCmd() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// nextIteration starts a new loop iteration. The help page is static, so
// nothing is sampled or scheduled until a key leaves it. Samples never
// overlap: providers keep their own CPU-busy baseline, so while one is in
// flight the next iteration starts when its result arrives.
func (m *Model) nextIteration() tea.Cmd {
	if m.state.Mode == ModeHelp || m.inFlight {
		return nil
	}
	m.inFlight = true
	return m.sampleCmd()
}
