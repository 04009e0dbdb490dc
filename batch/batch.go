package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"procwatch/monitor"
	"procwatch/proc"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type Options struct {
	Provider       proc.Provider
	Interval       time.Duration
	MeasureElapsed bool
	// Count is the number of frames to print; 0 runs until ctx is done.
	Count    int
	View     monitor.View
	Renderer Renderer
	Out      io.Writer
	Logger   zerolog.Logger
}

// Runner is the non-interactive loop: sample, compute, print, sleep.
type Runner struct {
	opts   Options
	cycle  *monitor.Cycle
	logger zerolog.Logger
	now    func() time.Time
}

func New(opts Options) (*Runner, error) {
	if opts.Provider == nil {
		return nil, errors.New("batch: no provider")
	}
	if opts.Count < 0 {
		return nil, fmt.Errorf("batch: invalid frame count %d", opts.Count)
	}
	if opts.Interval <= 0 {
		opts.Interval = monitor.DefaultInterval
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Renderer.MaxRows == 0 {
		opts.Renderer.MaxRows = terminalRows(opts.Out)
	}
	return &Runner{
		opts: opts,
		cycle: monitor.NewCycle(monitor.Options{
			Interval:       opts.Interval,
			MeasureElapsed: opts.MeasureElapsed,
			Logger:         opts.Logger,
		}),
		logger: opts.Logger.With().Str("component", "batch").Logger(),
		now:    time.Now,
	}, nil
}

// Run prints Count frames. Every process reads 0% CPU in the first cycle,
// so unless a single frame was asked for, that cycle only primes the
// counters and printing starts one interval later.
func (r *Runner) Run(ctx context.Context) error {
	printed := 0
	prime := r.opts.Count != 1

	if err := r.step(ctx, !prime); err != nil {
		return err
	}
	if !prime {
		return nil
	}

	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug().Int("frames", printed).Msg("stopped")
			return nil

		case <-ticker.C:
			if err := r.step(ctx, true); err != nil {
				return err
			}
			printed++
			if r.opts.Count > 0 && printed >= r.opts.Count {
				return nil
			}
		}
	}
}

func (r *Runner) step(ctx context.Context, emit bool) error {
	s := monitor.Collect(ctx, r.opts.Provider, r.now)
	f := r.cycle.Step(s, r.opts.View)
	r.logger.Debug().
		Int("rows", len(f.Rows)).
		Int("tracked", r.cycle.Tracked()).
		Float64("interval", f.Interval).
		Msg("cycle")
	if !emit {
		return nil
	}
	if err := r.opts.Renderer.Render(r.opts.Out, f); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	_, err := io.WriteString(r.opts.Out, "\n")
	return err
}

// terminalRows fits a frame on screen when writing to a terminal. Pipes get
// every row.
func terminalRows(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	_, h, err := term.GetSize(int(f.Fd()))
	if err != nil || h <= 6 {
		return 0
	}
	// summary, three rules, header and the blank separator
	return h - 6
}
