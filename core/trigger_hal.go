package core

// Edge is the signal transition a trigger reacts to
type Edge uint8

const (
	EdgeFalling Edge = iota
	EdgeRising
)

func (e Edge) String() string {
	if e == EdgeRising {
		return "rising"
	}
	return "falling"
}

// Pull is the input bias applied to a trigger pin
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// TriggerSource delivers a callback on an external edge. The handler runs in
// interrupt context and must not block.
type TriggerSource interface {
	Arm(edge Edge, pull Pull, handler func()) error
}

// TriggerBinding is the edge polarity and bias of one control input
type TriggerBinding struct {
	Edge Edge
	Pull Pull
}

// TriggerConfig holds the bindings of the three control inputs
type TriggerConfig struct {
	Reset  TriggerBinding
	Pause  TriggerBinding
	Resume TriggerBinding
}

// DefaultTriggerConfig matches the usual push-button wiring: reset and resume
// buttons pull to ground against an internal pull-up, pause is driven high.
func DefaultTriggerConfig() TriggerConfig {
	return TriggerConfig{
		Reset:  TriggerBinding{Edge: EdgeFalling, Pull: PullUp},
		Pause:  TriggerBinding{Edge: EdgeRising, Pull: PullNone},
		Resume: TriggerBinding{Edge: EdgeFalling, Pull: PullUp},
	}
}
