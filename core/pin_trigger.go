package core

// PinTrigger is a TriggerSource on a single GPIO input
type PinTrigger struct {
	gpio GPIODriver
	Pin  GPIOPin
}

// NewPinTrigger binds a trigger to a GPIO pin
func NewPinTrigger(gpio GPIODriver, pin GPIOPin) *PinTrigger {
	return &PinTrigger{gpio: gpio, Pin: pin}
}

// Arm configures the pin bias and installs the edge handler
func (p *PinTrigger) Arm(edge Edge, pull Pull, handler func()) error {
	if p.gpio == nil {
		return ErrMissingHardware
	}
	if handler == nil {
		return ErrNoHandler
	}

	if err := p.gpio.ConfigureInput(p.Pin, pull); err != nil {
		return err
	}

	return p.gpio.SetEdgeInterrupt(p.Pin, edge, handler)
}
