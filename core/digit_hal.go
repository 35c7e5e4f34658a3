package core

// DigitSelect identifies one of the six multiplexed digit positions.
// The numeric order is the refresh order.
type DigitSelect uint8

const (
	SecondsOnes DigitSelect = iota
	SecondsTens
	MinutesOnes
	MinutesTens
	HoursOnes
	HoursTens

	NumDigits = 6
)

// MaxDigitValue is the largest value a BCD digit write may carry
const MaxDigitValue = 9

// Mask returns the one-of-six selector bit for the digit
func (d DigitSelect) Mask() uint8 {
	return 1 << d
}

func (d DigitSelect) String() string {
	switch d {
	case SecondsOnes:
		return "seconds-ones"
	case SecondsTens:
		return "seconds-tens"
	case MinutesOnes:
		return "minutes-ones"
	case MinutesTens:
		return "minutes-tens"
	case HoursOnes:
		return "hours-ones"
	case HoursTens:
		return "hours-tens"
	default:
		return "invalid"
	}
}

// DigitOutput is the abstract digit bus the display multiplexer drives.
// Platform-specific implementations map a selector and a BCD value onto
// whatever actually lights the segments.
type DigitOutput interface {
	// ConfigureDigits prepares the bus for output
	ConfigureDigits() error

	// WriteDigit activates exactly one digit and presents value 0-9 on it
	WriteDigit(sel DigitSelect, value uint8) error

	// Blank turns every digit off
	Blank() error
}
