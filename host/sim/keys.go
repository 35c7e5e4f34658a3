package sim

import (
	"context"
	"errors"
	"io"
	"sync"

	"stopwatch/core"
)

// ErrQuit is returned by Keypad.Run when the quit key is pressed
var ErrQuit = errors.New("quit key pressed")

// KeyTrigger is a TriggerSource whose edge is a key press
type KeyTrigger struct {
	Name string
	Key  byte

	mu      sync.Mutex
	edge    core.Edge
	pull    core.Pull
	handler func()
}

// Arm installs the handler. Edge and bias have no meaning for a key but are
// kept for logging.
func (k *KeyTrigger) Arm(edge core.Edge, pull core.Pull, handler func()) error {
	if handler == nil {
		return core.ErrNoHandler
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.edge, k.pull, k.handler = edge, pull, handler
	return nil
}

// Edge returns the configured edge
func (k *KeyTrigger) Edge() core.Edge {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.edge
}

// Fire runs the handler, reporting whether one was armed
func (k *KeyTrigger) Fire() bool {
	k.mu.Lock()
	h := k.handler
	k.mu.Unlock()

	if h == nil {
		return false
	}
	h()
	return true
}

// Keypad reads key presses and fires the matching triggers
type Keypad struct {
	in       io.Reader
	quit     byte
	triggers map[byte]*KeyTrigger
	onKey    func(*KeyTrigger)
}

// NewKeypad reads from in; quit ends Run
func NewKeypad(in io.Reader, quit byte) *Keypad {
	return &Keypad{
		in:       in,
		quit:     quit,
		triggers: make(map[byte]*KeyTrigger),
	}
}

// Add creates a trigger bound to key
func (k *Keypad) Add(name string, key byte) *KeyTrigger {
	t := &KeyTrigger{Name: name, Key: key}
	k.triggers[key] = t
	return t
}

// OnKey sets a callback run after each fired trigger
func (k *Keypad) OnKey(fn func(*KeyTrigger)) {
	k.onKey = fn
}

// Run reads until the quit key, end of input, or ctx is cancelled.
// Returns ErrQuit for the quit key and nil at end of input.
func (k *Keypad) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan byte)
	errs := make(chan error, 1)

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := k.in.Read(buf)
			if n == 1 {
				select {
				case keys <- buf[0]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				errs <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case key := <-keys:
			if key == k.quit {
				return ErrQuit
			}
			t, ok := k.triggers[key]
			if !ok || !t.Fire() {
				continue
			}
			if k.onKey != nil {
				k.onKey(t)
			}
		}
	}
}
