package sim

import (
	"fmt"
	"io"
	"sync"

	"stopwatch/core"
)

// TerminalDisplay is a DigitOutput that latches each digit the way the eye
// does and redraws one terminal line whenever a full cycle shows a new value.
type TerminalDisplay struct {
	mu     sync.Mutex
	w      io.Writer
	digits [core.NumDigits]uint8
	shown  string
	frames uint32
	status func() string
}

// NewTerminalDisplay renders to w. status, if set, is appended to each line.
func NewTerminalDisplay(w io.Writer, status func() string) *TerminalDisplay {
	return &TerminalDisplay{w: w, status: status}
}

// ConfigureDigits shows all zeros
func (d *TerminalDisplay) ConfigureDigits() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.digits = [core.NumDigits]uint8{}
	return d.render()
}

// WriteDigit latches one digit; the last digit of a cycle triggers a redraw
func (d *TerminalDisplay) WriteDigit(sel core.DigitSelect, value uint8) error {
	if sel >= core.NumDigits {
		return core.ErrInvalidSelect
	}
	if value > core.MaxDigitValue {
		return core.ErrInvalidDigit
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.digits[sel] = value
	if sel == core.HoursTens {
		d.frames++
		return d.render()
	}
	return nil
}

// Blank clears the line
func (d *TerminalDisplay) Blank() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.shown = ""
	return d.write("")
}

// Text returns the digits as HH:MM:SS
func (d *TerminalDisplay) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.text()
}

// Frames returns how many complete cycles were drawn
func (d *TerminalDisplay) Frames() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.frames
}

func (d *TerminalDisplay) text() string {
	g := d.digits
	return fmt.Sprintf("%d%d:%d%d:%d%d",
		g[core.HoursTens], g[core.HoursOnes],
		g[core.MinutesTens], g[core.MinutesOnes],
		g[core.SecondsTens], g[core.SecondsOnes])
}

func (d *TerminalDisplay) render() error {
	line := d.text()
	if d.status != nil {
		line += "  [" + d.status() + "]"
	}
	if line == d.shown {
		return nil
	}
	d.shown = line
	return d.write(line)
}

// write redraws the current terminal line
func (d *TerminalDisplay) write(line string) error {
	_, err := fmt.Fprintf(d.w, "\r%s\x1b[K", line)
	return err
}
