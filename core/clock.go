package core

// Rollover moduli for each Clock field
const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
	HoursPerDay      = 24
)

// Clock is the elapsed time held by the stopwatch.
// Every field stays inside its modulus; overflow carries into the next field
// and hours wrap silently to zero (days are not tracked).
type Clock struct {
	Seconds uint8
	Minutes uint8
	Hours   uint8
}

// AdvanceOneSecond adds one second with carry
func (c *Clock) AdvanceOneSecond() {
	c.Seconds++
	if c.Seconds < SecondsPerMinute {
		return
	}
	c.Seconds = 0

	c.Minutes++
	if c.Minutes < MinutesPerHour {
		return
	}
	c.Minutes = 0

	c.Hours++
	if c.Hours >= HoursPerDay {
		c.Hours = 0
	}
}

// Reset zeroes all fields
func (c *Clock) Reset() {
	*c = Clock{}
}

// Valid reports whether every field is inside its range
func (c Clock) Valid() bool {
	return c.Seconds < SecondsPerMinute &&
		c.Minutes < MinutesPerHour &&
		c.Hours < HoursPerDay
}

// TotalSeconds returns the clock value as seconds since zero
func (c Clock) TotalSeconds() uint32 {
	return uint32(c.Hours)*3600 + uint32(c.Minutes)*60 + uint32(c.Seconds)
}

// ClockFromSeconds builds a Clock from a second count, wrapping at 24 hours
func ClockFromSeconds(total uint32) Clock {
	total %= HoursPerDay * MinutesPerHour * SecondsPerMinute
	return Clock{
		Seconds: uint8(total % 60),
		Minutes: uint8(total / 60 % 60),
		Hours:   uint8(total / 3600),
	}
}

// Digit returns the decimal digit shown at the given position
func (c Clock) Digit(sel DigitSelect) uint8 {
	switch sel {
	case SecondsOnes:
		return c.Seconds % 10
	case SecondsTens:
		return c.Seconds / 10
	case MinutesOnes:
		return c.Minutes % 10
	case MinutesTens:
		return c.Minutes / 10
	case HoursOnes:
		return c.Hours % 10
	case HoursTens:
		return c.Hours / 10
	}
	return 0
}

// String formats the clock as HH:MM:SS
func (c Clock) String() string {
	buf := [8]byte{
		'0' + c.Hours/10, '0' + c.Hours%10, ':',
		'0' + c.Minutes/10, '0' + c.Minutes%10, ':',
		'0' + c.Seconds/10, '0' + c.Seconds%10,
	}
	return string(buf[:])
}
