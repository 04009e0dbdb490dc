package ui

import (
	"procwatch/config"
	"procwatch/monitor"
)

// Messages. seq ties ticks and samples to the loop iteration that asked
// for them; anything from an older iteration is dropped.

type tickMsg struct {
	seq int
}

type samplesMsg struct {
	seq     int
	samples monitor.Samples
}

type configMsg struct {
	cfg *config.Config
}
