package monitor

import "procwatch/model"

const (
	nsPerSecond = 1e9
	bytesPerMB  = 1024 * 1024
)

// CPUTimes is the last cumulative CPU time observed for a pid.
type CPUTimes struct {
	UserNs   uint64
	SystemNs uint64
}

// PrevStats remembers the previous cumulative counters per pid. Entries for
// processes that went away are kept; the table only lives as long as the
// monitor does.
type PrevStats map[int32]CPUTimes

func NewPrevStats() PrevStats {
	return make(PrevStats)
}

// ComputeDeltas turns one cycle of samples into rows, reading and then
// replacing the entry in prev for every pid it sees.
//
// A pid seen for the first time reports 0% CPU. A pid whose counters went
// backwards (reused pid) also reports 0%. intervalSeconds <= 0 is treated
// as one second.
func ComputeDeltas(samples []model.ProcessSample, prev PrevStats, totalMemBytes uint64, intervalSeconds float64) []model.Row {
	if intervalSeconds <= 0 {
		intervalSeconds = 1
	}

	rows := make([]model.Row, 0, len(samples))
	for _, s := range samples {
		if s.PID == 0 {
			continue
		}

		cpu := 0.0
		if last, ok := prev[s.PID]; ok {
			delta := signedDelta(s.UserNs, last.UserNs) + signedDelta(s.SystemNs, last.SystemNs)
			if delta > 0 {
				cpu = float64(delta) / nsPerSecond / intervalSeconds * 100.0
			}
		}
		prev[s.PID] = CPUTimes{UserNs: s.UserNs, SystemNs: s.SystemNs}

		ram := 0.0
		if totalMemBytes > 0 {
			ram = float64(s.ResidentBytes) / float64(totalMemBytes) * 100.0
		}

		rows = append(rows, model.Row{
			PID:        s.PID,
			Name:       s.Name,
			CPUPercent: cpu,
			ResidentMB: float64(s.ResidentBytes) / bytesPerMB,
			RAMPercent: ram,
			Members:    1,
		})
	}
	return rows
}

func signedDelta(cur, last uint64) int64 {
	if cur >= last {
		return int64(cur - last)
	}
	return -int64(last - cur)
}
