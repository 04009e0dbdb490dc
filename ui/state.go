package ui

import "procwatch/model"

type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
)

func (m Mode) String() string {
	if m == ModeHelp {
		return "help"
	}
	return "normal"
}

// ViewState is what the keyboard controls: which page is shown, the sort
// key and whether rows are grouped by name.
type ViewState struct {
	Mode    Mode
	Sort    model.SortKey
	Grouped bool
}

// Outcome tells the render loop what a key press did.
type Outcome int

const (
	// Ignored keys leave the state alone and do not end the input wait.
	Ignored Outcome = iota
	// Handled keys end the input wait; the state may or may not have changed.
	Handled
	Quit
)

// Apply maps one key press onto the state. Sort keys also leave the help
// page; "g" only flips grouping.
func (s ViewState) Apply(key string) (ViewState, Outcome) {
	switch key {
	case "q", "ctrl+c":
		return s, Quit
	case "h":
		s.Mode = ModeHelp
	case "v":
		s.Mode, s.Sort = ModeNormal, model.SortNone
	case "r":
		s.Mode, s.Sort = ModeNormal, model.SortByRAM
	case "c":
		s.Mode, s.Sort = ModeNormal, model.SortByCPU
	case "g":
		s.Grouped = !s.Grouped
	default:
		return s, Ignored
	}
	return s, Handled
}
