package ui

import (
	"fmt"

	"procwatch/model"

	"github.com/charmbracelet/bubbles/table"
)

func columns(nameWidth int) []table.Column {
	return []table.Column{
		{Title: "PID", Width: 7},
		{Title: "Name", Width: nameWidth},
		{Title: "CPU%", Width: 8},
		{Title: "Memory(MB)", Width: 12},
		{Title: "RAM%", Width: 8},
	}
}

func (m *Model) updateTable() {
	cols := columns(m.nameWidth)
	switch m.state.Sort {
	case model.SortByCPU:
		cols[2].Title += " ↓"
	case model.SortByRAM:
		cols[3].Title += " ↓"
	}
	m.table.SetColumns(cols)
	m.table.SetRows(buildRows(m.frame.Rows, m.maxRows))
}

// buildRows formats rows for the table. Group rows leave the PID blank.
func buildRows(rows []model.Row, maxRows int) []table.Row {
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		pid := ""
		if !r.IsGroup() {
			pid = fmt.Sprintf("%d", r.PID)
		}
		out = append(out, table.Row{
			pid,
			r.Name,
			fmt.Sprintf("%6.2f", r.CPUPercent),
			fmt.Sprintf("%10.4f", r.ResidentMB),
			fmt.Sprintf("%6.3f", r.RAMPercent),
		})
	}
	return out
}
