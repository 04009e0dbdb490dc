package proc

import (
	"context"
	"fmt"

	"procwatch/model"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// GopsutilProvider samples through gopsutil and works on every platform
// gopsutil supports.
type GopsutilProvider struct {
	width  nameWidth
	logger zerolog.Logger
}

func NewGopsutilProvider(opts Options) *GopsutilProvider {
	p := &GopsutilProvider{
		logger: opts.Logger.With().Str("component", "GopsutilProvider").Logger(),
	}
	p.width.set(opts.NameWidth)
	return p
}

func (p *GopsutilProvider) SetNameWidth(width int) {
	p.width.set(width)
}

func (p *GopsutilProvider) SampleSystem(ctx context.Context) (model.SystemSample, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.SystemSample{}, fmt.Errorf("read virtual memory: %w", err)
	}

	s := model.SystemSample{
		TotalBytes:    vm.Total,
		FreeBytes:     vm.Free,
		InactiveBytes: vm.Inactive,
	}

	// interval 0 compares against the previous call
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return model.SystemSample{}, fmt.Errorf("read cpu percent: %w", err)
	}
	if len(pcts) > 0 {
		s.CPUBusyPercent = pcts[0]
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		s.Load1, s.Load5, s.Load15 = avg.Load1, avg.Load5, avg.Load15
	}
	if up, err := host.UptimeWithContext(ctx); err == nil {
		s.UptimeSeconds = up
	}
	return s, nil
}

func (p *GopsutilProvider) SampleProcesses(ctx context.Context) ([]model.ProcessSample, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	width := p.width.get()
	out := make([]model.ProcessSample, 0, len(procs))
	skipped := 0
	for _, pr := range procs {
		if pr.Pid <= 0 {
			continue
		}
		times, err := pr.TimesWithContext(ctx)
		if err != nil {
			skipped++
			continue
		}
		memInfo, err := pr.MemoryInfoWithContext(ctx)
		if err != nil {
			skipped++
			continue
		}
		name, err := pr.NameWithContext(ctx)
		if err != nil {
			name = model.UnknownName
		}
		out = append(out, model.ProcessSample{
			PID:           pr.Pid,
			Name:          model.TruncateName(name, width),
			UserNs:        secondsToNs(times.User),
			SystemNs:      secondsToNs(times.System),
			ResidentBytes: memInfo.RSS,
		})
	}
	if skipped > 0 {
		p.logger.Debug().Int("skipped", skipped).Int("sampled", len(out)).Msg("some processes were unreadable")
	}
	return out, nil
}
