package model

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// TruncateName fits name into width display cells, replacing the tail with
// "..." when it does not fit. Empty names become UnknownName.
func TruncateName(name string, width int) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnknownName
	}
	if width <= len(ellipsis) {
		width = DefaultNameWidth
	}
	return runewidth.Truncate(name, width, ellipsis)
}
