package monitor

import "procwatch/model"

// Group merges rows sharing a name into one row per name, summing CPU%,
// resident MB and RAM%. Group rows have PID 0. Rows come out in the order
// each name was first seen.
func Group(rows []model.Row, enabled bool) []model.Row {
	if !enabled {
		return rows
	}

	index := make(map[string]int, len(rows))
	out := make([]model.Row, 0, len(rows))
	for _, r := range rows {
		i, ok := index[r.Name]
		if !ok {
			index[r.Name] = len(out)
			out = append(out, model.Row{Name: r.Name})
			i = len(out) - 1
		}
		g := &out[i]
		g.CPUPercent += r.CPUPercent
		g.ResidentMB += r.ResidentMB
		g.RAMPercent += r.RAMPercent
		g.Members += max(r.Members, 1)
	}
	return out
}
