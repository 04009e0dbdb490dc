package monitor

import (
	"sort"

	"procwatch/model"
)

// Sort orders rows in place by key and returns them. SortNone keeps the
// arrival order; ties keep their relative order for every key.
func Sort(rows []model.Row, key model.SortKey) []model.Row {
	switch key {
	case model.SortByCPU:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].CPUPercent > rows[j].CPUPercent
		})
	case model.SortByRAM:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ResidentMB > rows[j].ResidentMB
		})
	}
	return rows
}
