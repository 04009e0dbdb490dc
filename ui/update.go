package ui

import (
	"procwatch/monitor"
	"procwatch/proc"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil

	case tickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		cmd := m.nextIteration()
		return m, cmd

	case samplesMsg:
		m.inFlight = false
		// a key press started a newer iteration, or the help page was
		// opened while sampling; either way the counters stay untouched
		if msg.seq != m.seq || m.state.Mode == ModeHelp {
			cmd := m.nextIteration()
			return m, cmd
		}
		m.frame = m.cycle.Step(msg.samples, monitor.View{Sort: m.state.Sort, Grouped: m.state.Grouped})
		m.haveFrame = true
		m.updateTable()
		return m, m.waitCmd()

	case configMsg:
		m.applyConfig(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, outcome := m.state.Apply(msg.String())
	switch outcome {
	case Quit:
		return m, tea.Quit

	case Handled:
		if next != m.state {
			m.logger.Debug().
				Str("mode", next.Mode.String()).
				Str("sort", next.Sort.String()).
				Bool("grouped", next.Grouped).
				Msg("view changed")
		}
		m.state = next
		m.seq++
		cmd := m.nextIteration()
		return m, cmd
	}

	// anything else scrolls the table and keeps waiting
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) applyConfig(msg configMsg) {
	cfg := msg.cfg
	if m.overrides != nil {
		m.overrides(cfg)
	}
	m.interval = cfg.Interval
	m.cycle.SetInterval(cfg.Interval)
	m.cycle.SetMeasureElapsed(cfg.MeasureElapsed)
	m.maxRows = cfg.MaxRows
	if cfg.NameWidth != m.nameWidth {
		m.nameWidth = cfg.NameWidth
		if nw, ok := m.provider.(proc.NameWidther); ok {
			nw.SetNameWidth(cfg.NameWidth)
		}
	}
	m.updateTable()
}
