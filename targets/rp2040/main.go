//go:build rp2040

package main

import (
	"context"
	"machine"
	"stopwatch/core"
	"time"
)

// Board wiring
const (
	// Selector lines, one per digit, seconds-ones first (GPIO18-23)
	pinSelect0 = 18
	// BCD lines into the 7-segment decoder, bit 0 first
	pinData0 = 8

	pinReset  = 12 // button to ground, falling edge
	pinPause  = 13 // driven high, rising edge
	pinResume = 14 // button to ground, falling edge

	// Set to drive a TM1637 module instead of the BCD bus
	useTM1637        = false
	pinTM1637Clk     = machine.GPIO16
	pinTM1637Dio     = machine.GPIO17
	tm1637Brightness = 5
)

var panics uint32

// ledBlink blinks the LED a specific number of times for diagnostics
func ledBlink(count int) {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for i := 0; i < count; i++ {
		led.High()
		time.Sleep(150 * time.Millisecond)
		led.Low()
		time.Sleep(150 * time.Millisecond)
	}
	time.Sleep(500 * time.Millisecond)
}

// halt reports a boot failure forever; there is nothing to recover to
func halt(err error) {
	for {
		DebugPrintln("boot failed: " + err.Error())
		ledBlink(3)
	}
}

func selectPins() (pins [core.NumDigits]core.GPIOPin) {
	for i := range pins {
		pins[i] = core.GPIOPin(pinSelect0 + i)
	}
	return pins
}

func dataPins() (pins [4]core.GPIOPin) {
	for i := range pins {
		pins[i] = core.GPIOPin(pinData0 + i)
	}
	return pins
}

// claimPins checks the wiring before any pad is configured
func claimPins() error {
	var m core.PinMap
	if err := m.Claim("debug uart", core.GPIOPin(pinDebugTX), core.GPIOPin(pinDebugRX)); err != nil {
		return err
	}
	if err := m.Claim("led", core.GPIOPin(machine.LED)); err != nil {
		return err
	}
	if useTM1637 {
		if err := m.Claim("tm1637", core.GPIOPin(pinTM1637Clk), core.GPIOPin(pinTM1637Dio)); err != nil {
			return err
		}
	} else {
		sel, data := selectPins(), dataPins()
		if err := m.Claim("digit select", sel[:]...); err != nil {
			return err
		}
		if err := m.Claim("digit data", data[:]...); err != nil {
			return err
		}
	}
	return m.Claim("triggers", pinReset, pinPause, pinResume)
}

func digitBus(gpio core.GPIODriver) core.DigitOutput {
	if useTM1637 {
		return NewTM1637Display(pinTM1637Clk, pinTM1637Dio, tm1637Brightness)
	}
	return core.NewBCDBus(gpio, selectPins(), dataPins(), true)
}

func main() {
	if err := claimPins(); err != nil {
		halt(err)
	}

	InitDebugUART()
	core.SetDebugWriter(DebugPrintln)
	core.SetDebugEnabled(true)

	gpio := NewRPGPIODriver()

	sw, err := core.New(core.DefaultConfig(), NewAlarmTimer(), digitBus(gpio))
	if err != nil {
		halt(err)
	}

	err = sw.Init(
		core.NewPinTrigger(gpio, pinReset),
		core.NewPinTrigger(gpio, pinPause),
		core.NewPinTrigger(gpio, pinResume),
	)
	if err != nil {
		halt(err)
	}

	// DIAGNOSTIC: 1 blink = running
	ledBlink(1)

	// Main loop; Run only returns on a digit bus error
	ctx := context.Background()
	for {
		// Recover from panics in the main loop to prevent a firmware crash
		func() {
			defer func() {
				if r := recover(); r != nil {
					panics++
					DebugPrintln("main loop panic #" + core.Utoa(panics))
					core.DumpEvents()
				}
			}()

			if err := sw.Run(ctx); err != nil {
				core.DumpEvents()
			}
		}()
	}
}
