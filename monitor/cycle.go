package monitor

import (
	"context"
	"time"

	"procwatch/model"
	"procwatch/proc"

	"github.com/rs/zerolog"
)

// DefaultInterval is the nominal time between two samples.
const DefaultInterval = time.Second

// Samples is everything one provider round trip produced.
type Samples struct {
	System       model.SystemSample
	SystemErr    error
	Processes    []model.ProcessSample
	ProcessesErr error
	At           time.Time
}

// Collect reads both samples from p. It never fails as a whole; errors are
// carried in the result for Step to degrade on.
func Collect(ctx context.Context, p proc.Provider, now func() time.Time) Samples {
	if now == nil {
		now = time.Now
	}
	var s Samples
	s.Processes, s.ProcessesErr = p.SampleProcesses(ctx)
	s.System, s.SystemErr = p.SampleSystem(ctx)
	s.At = now()
	return s
}

// View selects how Step shapes its rows.
type View struct {
	Sort    model.SortKey
	Grouped bool
}

// Frame is the output of one cycle, ready for a renderer.
type Frame struct {
	System      model.SystemSample
	SystemStale bool
	Rows        []model.Row
	Interval    float64
}

type Options struct {
	Interval       time.Duration
	MeasureElapsed bool
	Logger         zerolog.Logger
}

// Cycle carries the state that survives between polling cycles: the
// previous CPU counters and the last good system summary. It is not safe
// for concurrent use.
type Cycle struct {
	prev     PrevStats
	lastSys  model.SystemSample
	lastAt   time.Time
	interval time.Duration
	measure  bool
	logger   zerolog.Logger
}

func NewCycle(opts Options) *Cycle {
	c := &Cycle{
		prev:    NewPrevStats(),
		measure: opts.MeasureElapsed,
		logger:  opts.Logger.With().Str("component", "Cycle").Logger(),
	}
	c.SetInterval(opts.Interval)
	return c
}

func (c *Cycle) SetInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultInterval
	}
	c.interval = d
}

func (c *Cycle) SetMeasureElapsed(on bool) {
	c.measure = on
}

// Tracked is the number of pids with a remembered counter.
func (c *Cycle) Tracked() int {
	return len(c.prev)
}

// Step runs the delta engine, the aggregator and the sorter over s.
//
// By default the CPU rate assumes the nominal interval even though the real
// gap is interval plus processing and input time; MeasureElapsed uses the
// wall clock between samples instead.
func (c *Cycle) Step(s Samples, view View) Frame {
	f := Frame{System: s.System}
	if s.SystemErr != nil {
		c.logger.Warn().Err(s.SystemErr).Msg("system summary unavailable, keeping last known")
		f.System = c.lastSys
		f.SystemStale = true
	} else {
		c.lastSys = s.System
	}
	if s.ProcessesErr != nil {
		c.logger.Warn().Err(s.ProcessesErr).Msg("process list unavailable")
	}

	f.Interval = c.interval.Seconds()
	if c.measure && !c.lastAt.IsZero() && s.At.After(c.lastAt) {
		f.Interval = s.At.Sub(c.lastAt).Seconds()
	}
	if !s.At.IsZero() {
		c.lastAt = s.At
	}

	rows := ComputeDeltas(s.Processes, c.prev, f.System.TotalBytes, f.Interval)
	rows = Group(rows, view.Grouped)
	f.Rows = Sort(rows, view.Sort)
	return f
}
