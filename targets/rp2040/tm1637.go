//go:build rp2040

package main

import (
	"machine"
	"stopwatch/core"
	"time"

	"tinygo.org/x/drivers/tm1637"
)

// TM1637Display implements core.DigitOutput on a six-grid TM1637 module.
// The chip latches every grid itself, so each phase simply rewrites one grid.
type TM1637Display struct {
	dev   tm1637.Device
	lines tmLines
}

// NewTM1637Display creates the display on a CLK/DIO pin pair
func NewTM1637Display(clk, dio machine.Pin, brightness uint8) *TM1637Display {
	return &TM1637Display{
		dev:   tm1637.New(clk, dio, brightness),
		lines: tmLines{clk: clk, dio: dio, set: tmSetLine, delay: tmDelay},
	}
}

// ConfigureDigits initializes the chip and shows all zeros
func (d *TM1637Display) ConfigureDigits() error {
	d.dev.Configure()
	for sel := core.DigitSelect(0); sel < core.NumDigits; sel++ {
		d.dev.DisplayDigit(0, gridFor(sel))
	}
	return nil
}

// WriteDigit writes one grid
func (d *TM1637Display) WriteDigit(sel core.DigitSelect, value uint8) error {
	if sel >= core.NumDigits {
		return core.ErrInvalidSelect
	}
	if value > core.MaxDigitValue {
		return core.ErrInvalidDigit
	}
	d.dev.DisplayDigit(value, gridFor(sel))
	return nil
}

// Blank writes empty segments to all six grids. The driver's ClearDisplay
// only reaches grids 0-3.
func (d *TM1637Display) Blank() error {
	var empty [core.NumDigits]byte
	d.lines.writeGrids(empty[:])
	return nil
}

// gridFor maps a digit to a grid; grid 0 is the leftmost (hours tens)
func gridFor(sel core.DigitSelect) uint8 {
	return uint8(core.NumDigits-1) - uint8(sel)
}

// tmLines drives the TM1637 two-wire bus directly. Lines are open drain: the
// chip pulls a released line high and an output pin holds it low.
type tmLines struct {
	clk, dio machine.Pin
	set      func(pin machine.Pin, high bool)
	delay    func()
}

func tmSetLine(pin machine.Pin, high bool) {
	if high {
		pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	} else {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
}

func tmDelay() {
	time.Sleep(time.Duration(tm1637.TM1637_DELAY) * time.Microsecond)
}

func (l *tmLines) start() {
	l.set(l.dio, true)
	l.set(l.clk, true)
	l.delay()
	l.set(l.dio, false)
	l.delay()
	l.set(l.clk, false)
}

func (l *tmLines) stop() {
	l.set(l.dio, false)
	l.delay()
	l.set(l.clk, true)
	l.delay()
	l.set(l.dio, true)
}

// writeByte clocks b out LSB first, then one clock for the chip's ack
func (l *tmLines) writeByte(b byte) {
	for i := 0; i < 8; i++ {
		l.set(l.dio, b&(1<<i) != 0)
		l.delay()
		l.set(l.clk, true)
		l.delay()
		l.set(l.clk, false)
		l.delay()
	}
	l.set(l.dio, true)
	l.set(l.clk, true)
	l.delay()
	l.set(l.clk, false)
}

// writeGrids writes segment bytes starting at grid 0 in auto-increment mode
func (l *tmLines) writeGrids(segments []byte) {
	l.start()
	l.writeByte(tm1637.TM1637_CMD1)
	l.stop()

	l.start()
	l.writeByte(tm1637.TM1637_CMD2)
	for _, seg := range segments {
		l.writeByte(seg)
	}
	l.stop()
}
