package proc

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"procwatch/model"

	"github.com/rs/zerolog"
)

// Provider reads host and per-process counters. SampleProcesses skips
// processes it cannot read instead of failing the whole sample.
type Provider interface {
	SampleSystem(ctx context.Context) (model.SystemSample, error)
	SampleProcesses(ctx context.Context) ([]model.ProcessSample, error)
}

const (
	KindGopsutil = "gopsutil"
	KindProcfs   = "procfs"
)

type Options struct {
	NameWidth int
	Logger    zerolog.Logger
}

// NameWidther is implemented by providers whose name truncation width can be
// changed while sampling is in flight.
type NameWidther interface {
	SetNameWidth(width int)
}

// New builds the provider registered under kind.
func New(kind string, opts Options) (Provider, error) {
	switch strings.ToLower(kind) {
	case "", KindGopsutil:
		return NewGopsutilProvider(opts), nil
	case KindProcfs:
		return NewProcfsProvider(DefaultProcRoot, opts)
	}
	return nil, fmt.Errorf("unknown provider %q", kind)
}

type nameWidth struct {
	v atomic.Int64
}

func (w *nameWidth) set(width int) {
	if width <= 0 {
		width = model.DefaultNameWidth
	}
	w.v.Store(int64(width))
}

func (w *nameWidth) get() int {
	return int(w.v.Load())
}

const nsPerSecond = 1e9

func secondsToNs(sec float64) uint64 {
	if sec <= 0 {
		return 0
	}
	return uint64(sec * nsPerSecond)
}
