package proc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"procwatch/model"

	"github.com/rs/zerolog"
	"github.com/tklauser/go-sysconf"
)

const DefaultProcRoot = "/proc"

var ErrUnsupported = errors.New("procfs provider requires a mounted /proc")

// ProcfsProvider parses /proc directly. CPU busy percent is computed from
// the aggregate cpu line of <root>/stat against the previous call.
type ProcfsProvider struct {
	root     string
	hz       uint64
	pageSize uint64
	width    nameWidth
	logger   zerolog.Logger

	mu       sync.Mutex
	prevBusy uint64
	prevAll  uint64
}

func NewProcfsProvider(root string, opts Options) (*ProcfsProvider, error) {
	if _, err := os.Stat(filepath.Join(root, "stat")); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	p := &ProcfsProvider{
		root:     root,
		hz:       detectHZ(),
		pageSize: uint64(os.Getpagesize()),
		logger:   opts.Logger.With().Str("component", "ProcfsProvider").Logger(),
	}
	p.width.set(opts.NameWidth)
	return p, nil
}

// detectHZ returns CLK_TCK, falling back to 100.
func detectHZ() uint64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return 100
	}
	return uint64(hz)
}

func (p *ProcfsProvider) SetNameWidth(width int) {
	p.width.set(width)
}

func (p *ProcfsProvider) SampleSystem(ctx context.Context) (model.SystemSample, error) {
	var s model.SystemSample

	mem, err := readMeminfo(filepath.Join(p.root, "meminfo"))
	if err != nil {
		return s, err
	}
	s.TotalBytes = mem["MemTotal"]
	s.FreeBytes = mem["MemFree"]
	s.InactiveBytes = mem["Inactive"]

	busy, all, err := readCPUTotals(filepath.Join(p.root, "stat"))
	if err != nil {
		return s, err
	}
	p.mu.Lock()
	if all > p.prevAll && busy >= p.prevBusy {
		s.CPUBusyPercent = float64(busy-p.prevBusy) / float64(all-p.prevAll) * 100.0
	}
	p.prevBusy, p.prevAll = busy, all
	p.mu.Unlock()

	s.Load1, s.Load5, s.Load15 = readLoadavg(filepath.Join(p.root, "loadavg"))
	s.UptimeSeconds = readUptime(filepath.Join(p.root, "uptime"))
	return s, nil
}

func (p *ProcfsProvider) SampleProcesses(ctx context.Context) ([]model.ProcessSample, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", p.root, err)
	}

	width := p.width.get()
	out := make([]model.ProcessSample, 0, len(entries))
	skipped := 0
	for _, ent := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !isNumeric(ent.Name()) {
			continue
		}
		pid, err := strconv.ParseInt(ent.Name(), 10, 32)
		if err != nil || pid <= 0 {
			continue
		}
		st, err := readProcStat(filepath.Join(p.root, ent.Name(), "stat"))
		if err != nil {
			skipped++
			continue
		}
		out = append(out, model.ProcessSample{
			PID:           int32(pid),
			Name:          model.TruncateName(st.comm, width),
			UserNs:        p.ticksToNs(st.utime),
			SystemNs:      p.ticksToNs(st.stime),
			ResidentBytes: st.rssPages * p.pageSize,
		})
	}
	if skipped > 0 {
		p.logger.Debug().Int("skipped", skipped).Int("sampled", len(out)).Msg("some processes were unreadable")
	}
	return out, nil
}

// ticksToNs splits whole seconds from the remainder so large counters do
// not overflow.
func (p *ProcfsProvider) ticksToNs(ticks uint64) uint64 {
	const ns = uint64(nsPerSecond)
	return ticks/p.hz*ns + ticks%p.hz*ns/p.hz
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

type procStat struct {
	comm         string
	utime, stime uint64
	rssPages     uint64
}

// readProcStat parses /proc/<pid>/stat. comm sits between the first '(' and
// the last ')' and may itself contain spaces or parentheses.
func readProcStat(path string) (procStat, error) {
	var st procStat
	data, err := os.ReadFile(path)
	if err != nil {
		return st, err
	}
	line := strings.TrimSpace(string(data))

	l := strings.IndexByte(line, '(')
	r := strings.LastIndexByte(line, ')')
	if l < 0 || r < 0 || r <= l {
		return st, fmt.Errorf("malformed stat line in %s", path)
	}
	st.comm = line[l+1 : r]
	fields := strings.Fields(line[r+1:])
	if len(fields) < 22 {
		return st, fmt.Errorf("short stat line in %s: %d fields", path, len(fields))
	}

	// fields[0] is field 3 (state) in proc(5) numbering
	field := func(i int) string { return fields[i-3] }
	if st.utime, err = strconv.ParseUint(field(14), 10, 64); err != nil {
		return st, fmt.Errorf("parse utime in %s: %w", path, err)
	}
	if st.stime, err = strconv.ParseUint(field(15), 10, 64); err != nil {
		return st, fmt.Errorf("parse stime in %s: %w", path, err)
	}
	rss, err := strconv.ParseInt(field(24), 10, 64)
	if err != nil {
		return st, fmt.Errorf("parse rss in %s: %w", path, err)
	}
	if rss > 0 {
		st.rssPages = uint64(rss)
	}
	return st, nil
}

// readMeminfo returns the kB-valued lines of meminfo converted to bytes.
func readMeminfo(path string) (map[string]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open meminfo: %w", err)
	}
	defer f.Close()

	out := make(map[string]uint64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		if len(fields) >= 3 && fields[2] == "kB" {
			v *= 1024
		}
		out[strings.TrimSuffix(fields[0], ":")] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan meminfo: %w", err)
	}
	if out["MemTotal"] == 0 {
		return nil, fmt.Errorf("MemTotal not found in %s", path)
	}
	return out, nil
}

// readCPUTotals returns busy and total jiffies from the aggregate cpu line.
// idle and iowait count as not busy.
func readCPUTotals(path string) (busy, all uint64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open stat: %w", err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return 0, 0, fmt.Errorf("read stat: %w", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 5 || fields[0] != "cpu" {
		return 0, 0, fmt.Errorf("unexpected cpu line in %s", path)
	}

	var idle uint64
	for i, tok := range fields[1:] {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			continue
		}
		// guest and guest_nice are already included in user and nice
		if i >= 8 {
			break
		}
		all += v
		if i == 3 || i == 4 {
			idle += v
		}
	}
	return all - idle, all, nil
}

func readLoadavg(path string) (l1, l5, l15 float64) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, 0
	}
	defer f.Close()

	fmt.Fscan(f, &l1, &l5, &l15)
	return l1, l5, l15
}

func readUptime(path string) uint64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	var up float64
	fmt.Fscan(f, &up)
	return uint64(up)
}
