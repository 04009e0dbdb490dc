package batch

import (
	"fmt"
	"io"
	"strings"

	"procwatch/model"
	"procwatch/monitor"

	"github.com/mattn/go-runewidth"
)

// Renderer writes frames as plain text, one box table per frame.
type Renderer struct {
	NameWidth int
	MaxRows   int
}

func (r Renderer) nameWidth() int {
	if r.NameWidth <= 3 {
		return model.DefaultNameWidth
	}
	return r.NameWidth
}

func (r Renderer) rule() string {
	return "+" + strings.Join([]string{
		strings.Repeat("-", 8),
		strings.Repeat("-", r.nameWidth()+2),
		strings.Repeat("-", 9),
		strings.Repeat("-", 12),
		strings.Repeat("-", 9),
	}, "+") + "+\n"
}

// Summary is the host line printed above every table.
func Summary(s model.SystemSample) string {
	return fmt.Sprintf("CPU Usage: %6.2f%% | RAM Usage: %6.2f%% (%d / %d MB)",
		s.CPUBusyPercent, s.RAMPercent(),
		s.UsedBytes()/(1024*1024), s.TotalBytes/(1024*1024))
}

func (r Renderer) Render(w io.Writer, f monitor.Frame) error {
	var b strings.Builder
	b.WriteString(Summary(f.System))
	if f.SystemStale {
		b.WriteString(" [stale]")
	}
	b.WriteString("\n")

	width := r.nameWidth()
	rule := r.rule()
	b.WriteString(rule)
	fmt.Fprintf(&b, "| %-6s | %s | %-7s | %-10s | %-7s |\n",
		"PID", runewidth.FillRight("Name", width), "CPU%", "Memory(MB)", "RAM%")
	b.WriteString(rule)

	rows := f.Rows
	if r.MaxRows > 0 && len(rows) > r.MaxRows {
		rows = rows[:r.MaxRows]
	}
	for _, row := range rows {
		pid := ""
		if !row.IsGroup() {
			pid = fmt.Sprintf("%d", row.PID)
		}
		name := runewidth.FillRight(runewidth.Truncate(row.Name, width, "..."), width)
		fmt.Fprintf(&b, "| %-6s | %s | %6.2f%% | %10.4f | %6.3f%% |\n",
			pid, name, row.CPUPercent, row.ResidentMB, row.RAMPercent)
	}
	b.WriteString(rule)

	_, err := io.WriteString(w, b.String())
	return err
}
