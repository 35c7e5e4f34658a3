package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event type codes
const (
	EvtElapsed  = 1 // Compare match latched
	EvtTickLost = 2 // Compare match dropped, signal buffer full
	EvtAdvance  = 3 // Clock advanced by one second
	EvtReset    = 4 // Reset trigger
	EvtPause    = 5 // Pause trigger took effect
	EvtResume   = 6 // Resume trigger took effect
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

// Event is one entry of the event ring
type Event struct {
	Type  uint8
	Stamp uint32 // system ticks at the event
	Clock Clock  // clock value after the event
}

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled controls whether DebugPrintln produces output
	debugEnabled bool

	eventRing     [EventRingSize]Event
	eventRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, a host logger, etc.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Never call it from interrupt context; record an event instead.
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

// recordEvent appends to the ring. Caller must have interrupts disabled or
// be running in interrupt context.
func recordEvent(eventType uint8, clock Clock) {
	idx := eventRingHead
	eventRing[idx] = Event{
		Type:  eventType,
		Stamp: GetTime(),
		Clock: clock,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events from oldest to newest
func Events() []Event {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// EventName returns a printable name for an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtElapsed:
		return "ELAPSED"
	case EvtTickLost:
		return "TICK_LOST!"
	case EvtAdvance:
		return "ADVANCE"
	case EvtReset:
		return "RESET"
	case EvtPause:
		return "PAUSE"
	case EvtResume:
		return "RESUME"
	default:
		return "UNKNOWN"
	}
}

// DumpEvents writes the event ring through the debug writer regardless of
// the enabled flag. Call it from the main loop, never from a handler.
func DumpEvents() {
	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		debugPrintln("[EVENTS] " + EventName(evt.Type) +
			" stamp=" + Utoa(evt.Stamp) +
			" clock=" + evt.Clock.String())
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEvents clears the event ring
func ClearEvents() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
}
