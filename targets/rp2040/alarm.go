//go:build rp2040

package main

import (
	"device/rp"
	"runtime/interrupt"
	"runtime/volatile"
	"stopwatch/core"
	"unsafe"
)

// RP2040 Timer peripheral memory map.
// Alarm 3 is used; the TinyGo runtime keeps alarm 0 for sleeping.
const (
	timerBase     = 0x40054000
	timerALARM3   = timerBase + 0x1C // Alarm compare value, writing arms it
	timerARMED    = timerBase + 0x20 // Write 1 to disarm
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word
	timerINTR     = timerBase + 0x34 // Raw interrupts, write 1 to clear
	timerINTE     = timerBase + 0x38 // Interrupt enable

	alarmBit = 1 << 3

	// An alarm target already in the past only matches after the 32-bit
	// counter wraps, so never arm closer than this
	minAlarmDelta = 20 // µs
)

var (
	timerAlarm = (*volatile.Register32)(unsafe.Pointer(uintptr(timerALARM3)))
	timerArmed = (*volatile.Register32)(unsafe.Pointer(uintptr(timerARMED)))
	timerRAWL  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
	timerIntr  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTR)))
	timerInte  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerINTE)))

	// activeAlarm is reached from the IRQ handler
	activeAlarm *AlarmTimer
)

// AlarmTimer implements core.TimerSource on the RP2040 1MHz timer.
// The counter never stops, so Stop disarms the alarm and keeps the distance
// to the next match; Start re-arms that far ahead.
type AlarmTimer struct {
	period    uint32 // µs
	target    uint32 // counter value of the next match
	remaining uint32 // µs to the next match while stopped
	onElapsed func()
	running   bool
}

// NewAlarmTimer creates an unconfigured alarm timer
func NewAlarmTimer() *AlarmTimer {
	return &AlarmTimer{}
}

// Configure sets the compare period and installs the alarm interrupt
func (a *AlarmTimer) Configure(periodMS uint32, onElapsed func()) error {
	if periodMS == 0 {
		return core.ErrInvalidPeriod
	}
	if onElapsed == nil {
		return core.ErrNoHandler
	}

	a.period = core.TimerFromMS(periodMS)
	a.remaining = a.period
	a.onElapsed = onElapsed
	activeAlarm = a

	timerArmed.Set(alarmBit)
	timerIntr.Set(alarmBit)
	timerInte.SetBits(alarmBit)

	intr := interrupt.New(rp.IRQ_TIMER_IRQ_3, alarmIRQ)
	intr.Enable()

	return nil
}

// Start arms the alarm. Called with interrupts disabled.
func (a *AlarmTimer) Start() {
	if a.running || a.onElapsed == nil {
		return
	}
	delta := a.remaining
	if delta < minAlarmDelta {
		delta = minAlarmDelta
	}
	a.target = timerRAWL.Get() + delta
	a.running = true
	timerAlarm.Set(a.target)
}

// Stop disarms the alarm and keeps the remainder. Called with interrupts
// disabled; a match already pending is delivered on the next Start.
func (a *AlarmTimer) Stop() {
	if !a.running {
		return
	}
	timerArmed.Set(alarmBit)
	a.running = false

	now := timerRAWL.Get()
	if timerIntr.Get()&alarmBit != 0 || int32(a.target-now) <= 0 {
		timerIntr.Set(alarmBit)
		a.remaining = 0
		return
	}
	a.remaining = a.target - now
}

// alarmIRQ re-arms the alarm one period on and raises the elapsed signal
func alarmIRQ(interrupt.Interrupt) {
	timerIntr.Set(alarmBit)

	a := activeAlarm
	if a == nil || !a.running {
		return
	}

	now := timerRAWL.Get()
	core.SetTime(now)

	a.target += a.period
	if int32(a.target-now) < minAlarmDelta {
		// Serviced late by more than a period; keep counting from now
		a.target = now + a.period
	}
	timerAlarm.Set(a.target)

	a.onElapsed()
}
