package model

// SystemSample is the host-wide summary for one cycle. Page counters are
// already converted to bytes by the provider.
type SystemSample struct {
	TotalBytes       uint64
	FreeBytes        uint64
	InactiveBytes    uint64
	SpeculativeBytes uint64
	CompressedBytes  uint64
	CPUBusyPercent   float64

	Load1, Load5, Load15 float64
	UptimeSeconds        uint64
}

// UsedBytes treats inactive and speculative pages as free and adds compressed
// memory back. Compressed accounting can push the result past TotalBytes.
func (s SystemSample) UsedBytes() uint64 {
	free := s.FreeBytes + s.InactiveBytes + s.SpeculativeBytes
	var used uint64
	if s.TotalBytes > free {
		used = s.TotalBytes - free
	}
	return used + s.CompressedBytes
}

func (s SystemSample) RAMPercent() float64 {
	if s.TotalBytes == 0 {
		return 0
	}
	return float64(s.UsedBytes()) / float64(s.TotalBytes) * 100.0
}
