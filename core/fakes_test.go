package core

import (
	"errors"
	"time"
)

// fakeTimer is a TimerSource whose compare matches are injected by the test
type fakeTimer struct {
	periodMS  uint32
	onElapsed func()
	running   bool
	starts    int
	stops     int
	failWith  error
}

func (f *fakeTimer) Configure(periodMS uint32, onElapsed func()) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.periodMS = periodMS
	f.onElapsed = onElapsed
	return nil
}

func (f *fakeTimer) Start() {
	if !f.running {
		f.running = true
		f.starts++
	}
}

func (f *fakeTimer) Stop() {
	if f.running {
		f.running = false
		f.stops++
	}
}

// Tick simulates a compare match. A stopped timer produces nothing.
func (f *fakeTimer) Tick() bool {
	if !f.running || f.onElapsed == nil {
		return false
	}
	f.onElapsed()
	return true
}

// recordingOutput is a DigitOutput that remembers every phase written
type recordingOutput struct {
	configured bool
	phases     []Phase
	blanks     int
	failAt     int // phase index to fail on, -1 for never
}

func newRecordingOutput() *recordingOutput {
	return &recordingOutput{failAt: -1}
}

func (r *recordingOutput) ConfigureDigits() error {
	r.configured = true
	return nil
}

func (r *recordingOutput) WriteDigit(sel DigitSelect, value uint8) error {
	if r.failAt >= 0 && len(r.phases) == r.failAt {
		return ErrInvalidDigit
	}
	r.phases = append(r.phases, Phase{Select: sel, Value: value})
	return nil
}

func (r *recordingOutput) Blank() error {
	r.blanks++
	return nil
}

// fakeTrigger captures the armed handler so tests can fire the edge
type fakeTrigger struct {
	edge    Edge
	pull    Pull
	handler func()
	err     error
}

func (f *fakeTrigger) Arm(edge Edge, pull Pull, handler func()) error {
	if f.err != nil {
		return f.err
	}
	f.edge = edge
	f.pull = pull
	f.handler = handler
	return nil
}

func (f *fakeTrigger) Fire() {
	if f.handler != nil {
		f.handler()
	}
}

// mockGPIODriver is an in-memory GPIODriver
type mockGPIODriver struct {
	pins       map[GPIOPin]bool
	outputs    map[GPIOPin]bool
	pulls      map[GPIOPin]Pull
	interrupts map[GPIOPin]Edge
	handlers   map[GPIOPin]func()
	failPin    GPIOPin
	failErr    error
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{
		pins:       make(map[GPIOPin]bool),
		outputs:    make(map[GPIOPin]bool),
		pulls:      make(map[GPIOPin]Pull),
		interrupts: make(map[GPIOPin]Edge),
		handlers:   make(map[GPIOPin]func()),
	}
}

var errMockPin = errors.New("mock pin failure")

func (m *mockGPIODriver) check(pin GPIOPin) error {
	if m.failErr != nil && pin == m.failPin {
		return m.failErr
	}
	return nil
}

func (m *mockGPIODriver) ConfigureOutput(pin GPIOPin) error {
	if err := m.check(pin); err != nil {
		return err
	}
	m.outputs[pin] = true
	m.pins[pin] = false
	return nil
}

func (m *mockGPIODriver) ConfigureInput(pin GPIOPin, pull Pull) error {
	if err := m.check(pin); err != nil {
		return err
	}
	m.pulls[pin] = pull
	m.pins[pin] = pull == PullUp
	return nil
}

func (m *mockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	if err := m.check(pin); err != nil {
		return err
	}
	m.pins[pin] = value
	return nil
}

func (m *mockGPIODriver) GetPin(pin GPIOPin) (bool, error) {
	return m.pins[pin], m.check(pin)
}

func (m *mockGPIODriver) SetEdgeInterrupt(pin GPIOPin, edge Edge, handler func()) error {
	if err := m.check(pin); err != nil {
		return err
	}
	m.interrupts[pin] = edge
	m.handlers[pin] = handler
	return nil
}

// noWait replaces the display busy-wait in tests
func noWait(time.Duration) {}

// testConfig is the default configuration with zero display delay
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PhaseDelay = 0
	cfg.Wait = noWait
	return cfg
}

// testRig wires a stopwatch to fakes and initializes it
type testRig struct {
	sw                   *Stopwatch
	timer                *fakeTimer
	out                  *recordingOutput
	reset, pause, resume *fakeTrigger
}

func newTestRig(cfg Config) (*testRig, error) {
	ClearEvents()

	r := &testRig{
		timer:  &fakeTimer{},
		out:    newRecordingOutput(),
		reset:  &fakeTrigger{},
		pause:  &fakeTrigger{},
		resume: &fakeTrigger{},
	}

	sw, err := New(cfg, r.timer, r.out)
	if err != nil {
		return nil, err
	}
	if err := sw.Init(r.reset, r.pause, r.resume); err != nil {
		return nil, err
	}
	r.sw = sw
	return r, nil
}

// tick injects a compare match and lets the main loop consume it
func (r *testRig) tick() error {
	if !r.timer.Tick() {
		return nil
	}
	_, err := r.sw.Step()
	return err
}
