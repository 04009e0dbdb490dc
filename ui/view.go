package ui

import (
	"fmt"
	"strings"

	"procwatch/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	footerNormal = "Press 'q' to quit and 'h' for help..."
	footerHelp   = "Press 'q' to quit..."
)

// HelpKeys is the static content of the help page.
var HelpKeys = []struct{ Key, Desc string }{
	{"h", "Show this help page"},
	{"v", "Display processes unsorted"},
	{"r", "Sort processes by RAM usage"},
	{"c", "Sort processes by CPU percentage"},
	{"g", "Turn On/Off Group Mode (by Name)"},
	{"q", "Quit"},
}

// View redraws the whole screen every time.
func (m Model) View() string {
	if m.state.Mode == ModeHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle("procwatch"))
	b.WriteString("\n\n")
	if !m.haveFrame {
		b.WriteString(keybindDescStyle.Render("sampling..."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(headerStyle.Render(SummaryLine(m.frame.System)))
	if m.frame.SystemStale {
		b.WriteString(" " + staleStyle.Render("[stale]"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render(footerNormal))
	return b.String()
}

// SummaryLine is the host summary shown above the table.
func SummaryLine(s model.SystemSample) string {
	cpu := fmt.Sprintf("%6.2f%%", s.CPUBusyPercent)
	ram := fmt.Sprintf("%6.2f%%", s.RAMPercent())
	return fmt.Sprintf("CPU Usage: %s | RAM Usage: %s (%d / %d MB)",
		usageStyle(s.CPUBusyPercent, 80, 50).Render(cpu),
		usageStyle(s.RAMPercent(), 90, 70).Render(ram),
		bytesToMB(s.UsedBytes()),
		bytesToMB(s.TotalBytes),
	)
}

func (m Model) renderStatus() string {
	s := m.frame.System
	group := "off"
	if m.state.Grouped {
		group = fmt.Sprintf("on (%d groups, %d processes)", len(m.frame.Rows), memberCount(m.frame.Rows))
	}
	return keybindDescStyle.Render(fmt.Sprintf(
		"Load: %.2f %.2f %.2f | Uptime: %s | Sort: %s | Group: %s",
		s.Load1, s.Load5, s.Load15,
		FormatUptime(s.UptimeSeconds),
		activeStyle.Render(m.state.Sort.String()),
		group,
	))
}

func memberCount(rows []model.Row) int {
	n := 0
	for _, r := range rows {
		n += max(r.Members, 1)
	}
	return n
}

func (m Model) renderTitle(text string) string {
	bar := titleBarStyle
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	return bar.Render(titleStyle.Render(text))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.renderTitle("procwatch - Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, k := range HelpKeys {
		fmt.Fprintf(&b, "  %s  %s\n",
			keybindStyle.Render(lipgloss.NewStyle().Width(3).Render(k.Key)),
			keybindDescStyle.Render(k.Desc))
	}
	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render(footerHelp))
	return helpBoxStyle.Render(b.String())
}
