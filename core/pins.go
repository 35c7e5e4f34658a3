package core

// PinConflictError names the pin and both functions that claimed it
type PinConflictError struct {
	Pin    GPIOPin
	Owner  string
	Second string
}

func (e *PinConflictError) Error() string {
	return "gpio " + Utoa(uint32(e.Pin)) + " claimed by " + e.Owner + " and " + e.Second
}

func (e *PinConflictError) Unwrap() error {
	return ErrPinConflict
}

type pinClaim struct {
	pin   GPIOPin
	owner string
}

// PinMap records which board function owns each GPIO. Boards claim every pin
// before configuring any of them, so a shared pad is caught at boot instead of
// silently rerouting a peripheral.
type PinMap struct {
	claims []pinClaim
}

// Claim assigns pins to owner. Nothing is recorded if any pin is already
// taken, including twice within the same call.
func (m *PinMap) Claim(owner string, pins ...GPIOPin) error {
	for i, pin := range pins {
		if prev, ok := m.Owner(pin); ok {
			return &PinConflictError{Pin: pin, Owner: prev, Second: owner}
		}
		for _, earlier := range pins[:i] {
			if earlier == pin {
				return &PinConflictError{Pin: pin, Owner: owner, Second: owner}
			}
		}
	}

	for _, pin := range pins {
		m.claims = append(m.claims, pinClaim{pin: pin, owner: owner})
	}
	return nil
}

// Owner returns the function holding pin
func (m *PinMap) Owner(pin GPIOPin) (string, bool) {
	for _, c := range m.claims {
		if c.pin == pin {
			return c.owner, true
		}
	}
	return "", false
}
