package sequencer

type Phase int

const (
	Idle Phase = iota
	Advancing
	Settling
	Completed
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Advancing:
		return "advancing"
	case Settling:
		return "settling"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (p Phase) Terminal() bool {
	return p == Completed || p == Stopped
}

// State is what a presentation layer needs to render one frame.
type State struct {
	Step     int     `json:"step"`
	Total    int     `json:"total"`
	Label    string  `json:"label"`
	Progress float64 `json:"progress"` // (Step+1)/Total, 1 when Total is 0
	Phase    Phase   `json:"phase"`
	Active   bool    `json:"active"` // false once Completed or Stopped
}

// Percent is Progress scaled to 0..100.
func (s State) Percent() float64 {
	return s.Progress * 100
}
