package ui

import (
	"testing"

	"procwatch/model"

	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	var s ViewState
	assert.Equal(t, ModeNormal, s.Mode)
	assert.Equal(t, model.SortNone, s.Sort)
	assert.False(t, s.Grouped)
}

func TestApplyTransitions(t *testing.T) {
	start := ViewState{Mode: ModeHelp, Sort: model.SortByCPU, Grouped: true}
	cases := []struct {
		key  string
		want ViewState
	}{
		{"h", ViewState{Mode: ModeHelp, Sort: model.SortByCPU, Grouped: true}},
		{"v", ViewState{Mode: ModeNormal, Sort: model.SortNone, Grouped: true}},
		{"r", ViewState{Mode: ModeNormal, Sort: model.SortByRAM, Grouped: true}},
		{"c", ViewState{Mode: ModeNormal, Sort: model.SortByCPU, Grouped: true}},
		{"g", ViewState{Mode: ModeHelp, Sort: model.SortByCPU, Grouped: false}},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			got, outcome := start.Apply(tc.key)
			assert.Equal(t, Handled, outcome)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestApplyQuit(t *testing.T) {
	s := ViewState{Sort: model.SortByRAM}
	for _, key := range []string{"q", "ctrl+c"} {
		got, outcome := s.Apply(key)
		assert.Equal(t, Quit, outcome)
		assert.Equal(t, s, got)
	}
}

func TestApplyIgnoresOtherKeys(t *testing.T) {
	s := ViewState{Sort: model.SortByRAM, Grouped: true}
	for _, key := range []string{"x", "H", "up", "enter", "alt+c", " "} {
		got, outcome := s.Apply(key)
		assert.Equal(t, Ignored, outcome, key)
		assert.Equal(t, s, got, key)
	}
}

func TestToggleGroupTwiceIsIdentity(t *testing.T) {
	s := ViewState{Sort: model.SortByCPU}
	once, _ := s.Apply("g")
	twice, _ := once.Apply("g")
	assert.NotEqual(t, s.Grouped, once.Grouped)
	assert.Equal(t, s, twice)
}

func TestHelpRoundTripKeepsSortAndGroup(t *testing.T) {
	s := ViewState{Sort: model.SortByRAM, Grouped: true}
	inHelp, _ := s.Apply("h")
	assert.Equal(t, ModeHelp, inHelp.Mode)
	assert.Equal(t, s.Sort, inHelp.Sort)
	assert.Equal(t, s.Grouped, inHelp.Grouped)

	back, _ := inHelp.Apply("r")
	assert.Equal(t, s, back)
}
