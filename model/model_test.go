package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateName(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short", "bash", 27, "bash"},
		{"exact", strings.Repeat("a", 27), 27, strings.Repeat("a", 27)},
		{"thirtyChars", strings.Repeat("b", 30), 27, strings.Repeat("b", 24) + "..."},
		{"empty", "", 27, UnknownName},
		{"blank", "   ", 27, UnknownName},
		{"badWidthFallsBack", strings.Repeat("c", 30), 2, strings.Repeat("c", 24) + "..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TruncateName(tc.in, tc.width))
		})
	}
}

func TestSystemSampleUsedBytes(t *testing.T) {
	s := SystemSample{
		TotalBytes:      16 << 30,
		FreeBytes:       4 << 30,
		InactiveBytes:   2 << 30,
		CompressedBytes: 1 << 30,
	}
	assert.Equal(t, uint64(11<<30), s.UsedBytes())
	assert.InDelta(t, 68.75, s.RAMPercent(), 1e-9)
}

func TestSystemSampleUsedBytesMayExceedTotal(t *testing.T) {
	s := SystemSample{TotalBytes: 8 << 30, CompressedBytes: 2 << 30}
	assert.Equal(t, uint64(10<<30), s.UsedBytes())
}

func TestSystemSampleFreeLargerThanTotal(t *testing.T) {
	s := SystemSample{TotalBytes: 1 << 30, FreeBytes: 2 << 30}
	assert.Zero(t, s.UsedBytes())
	assert.Zero(t, SystemSample{}.RAMPercent())
}

func TestParseSortKey(t *testing.T) {
	for in, want := range map[string]SortKey{"": SortNone, "none": SortNone, "CPU": SortByCPU, "ram": SortByRAM, "rss": SortByRAM} {
		got, ok := ParseSortKey(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseSortKey("pid")
	assert.False(t, ok)
}
