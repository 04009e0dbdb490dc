package model

import "strings"

type SortKey int

const (
	SortNone SortKey = iota
	SortByCPU
	SortByRAM
)

func (k SortKey) String() string {
	switch k {
	case SortByCPU:
		return "CPU"
	case SortByRAM:
		return "RAM"
	default:
		return "none"
	}
}

// ParseSortKey accepts the names used on the command line ("none", "cpu", "ram").
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, true
	case "cpu":
		return SortByCPU, true
	case "ram", "mem", "rss":
		return SortByRAM, true
	}
	return SortNone, false
}
