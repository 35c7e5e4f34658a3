package core

// RunState tells whether the time base is advancing
type RunState uint32

const (
	Running RunState = iota
	Paused
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}
