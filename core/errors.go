package core

import "errors"

var (
	ErrInvalidPeriod     = errors.New("timer period must be between 1ms and 1h")
	ErrNoHandler         = errors.New("callback is nil")
	ErrInvalidPhaseDelay = errors.New("phase delay must be between 0 and 5ms")
	ErrInvalidDigit      = errors.New("digit value out of range")
	ErrInvalidSelect     = errors.New("digit selector out of range")
	ErrMissingHardware   = errors.New("hardware collaborator is nil")
	ErrAlreadyStarted    = errors.New("stopwatch already initialized")
	ErrNotStarted        = errors.New("stopwatch not initialized")
	ErrPinConflict       = errors.New("gpio claimed twice")
)

// PhaseError reports which display phase failed
type PhaseError struct {
	Select DigitSelect
	Err    error
}

func (e *PhaseError) Error() string {
	return "display phase " + e.Select.String() + ": " + e.Err.Error()
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
