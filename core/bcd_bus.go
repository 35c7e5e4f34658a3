package core

// BCDBus drives six common-cathode/anode digits through one selector line per
// digit and a shared 4-bit BCD value feeding an external 7-segment decoder.
type BCDBus struct {
	gpio       GPIODriver
	selectPins [NumDigits]GPIOPin
	dataPins   [4]GPIOPin
	activeHigh bool // selector level that lights a digit
}

// NewBCDBus creates a bus. dataPins are ordered from bit 0 to bit 3.
func NewBCDBus(gpio GPIODriver, selectPins [NumDigits]GPIOPin, dataPins [4]GPIOPin, activeHigh bool) *BCDBus {
	return &BCDBus{
		gpio:       gpio,
		selectPins: selectPins,
		dataPins:   dataPins,
		activeHigh: activeHigh,
	}
}

// ConfigureDigits sets every bus pin as an output and lights all digits with 0,
// the power-on display state.
func (b *BCDBus) ConfigureDigits() error {
	if b.gpio == nil {
		return ErrMissingHardware
	}
	for _, pin := range b.dataPins {
		if err := b.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := b.gpio.SetPin(pin, false); err != nil {
			return err
		}
	}
	for _, pin := range b.selectPins {
		if err := b.gpio.ConfigureOutput(pin); err != nil {
			return err
		}
		if err := b.gpio.SetPin(pin, b.activeHigh); err != nil {
			return err
		}
	}
	return nil
}

// WriteDigit deselects everything, presents the value, then selects one digit.
// Switching the selector last keeps the previous value from ghosting onto the
// new digit.
func (b *BCDBus) WriteDigit(sel DigitSelect, value uint8) error {
	if sel >= NumDigits {
		return ErrInvalidSelect
	}
	if value > MaxDigitValue {
		return ErrInvalidDigit
	}

	if err := b.Blank(); err != nil {
		return err
	}

	for bit, pin := range b.dataPins {
		if err := b.gpio.SetPin(pin, value&(1<<bit) != 0); err != nil {
			return err
		}
	}

	return b.gpio.SetPin(b.selectPins[sel], b.activeHigh)
}

// Blank deselects every digit
func (b *BCDBus) Blank() error {
	for _, pin := range b.selectPins {
		if err := b.gpio.SetPin(pin, !b.activeHigh); err != nil {
			return err
		}
	}
	return nil
}
