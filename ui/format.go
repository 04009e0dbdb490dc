package ui

import "fmt"

// FormatUptime renders seconds as "3d 04:05" or "04:05:06".
func FormatUptime(sec uint64) string {
	d := sec / 86400
	h := (sec % 86400) / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	if d > 0 {
		return fmt.Sprintf("%dd %02d:%02d", d, h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func bytesToMB(b uint64) uint64 {
	return b / (1024 * 1024)
}
