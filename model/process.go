package model

// DefaultNameWidth is the widest process name shown in the Name column.
const DefaultNameWidth = 27

// UnknownName replaces process names that could not be read.
const UnknownName = "Unknown"

// ProcessSample is one process as reported by a provider in a single cycle.
// UserNs and SystemNs are cumulative since process start.
type ProcessSample struct {
	PID           int32
	Name          string
	UserNs        uint64
	SystemNs      uint64
	ResidentBytes uint64
}

// Row is a single line of the process table. PID is 0 for group rows.
type Row struct {
	PID        int32
	Name       string
	CPUPercent float64
	ResidentMB float64
	RAMPercent float64
	Members    int
}

// IsGroup reports whether the row aggregates several processes.
func (r Row) IsGroup() bool {
	return r.PID == 0
}
