package powerinfo

// TimeRemaining is the estimated runtime left on battery power.
// Non-negative values are seconds; Unlimited and Unknown are sentinels.
type TimeRemaining int64

const (
	// Unlimited means the host runs from the wall, so there is no runtime limit.
	Unlimited TimeRemaining = -1
	// Unknown means the sensor cannot estimate the remaining runtime.
	Unknown TimeRemaining = -2
)

// Seconds returns a TimeRemaining of s seconds. Negative values are Unknown.
func Seconds(s int64) TimeRemaining {
	if s < 0 {
		return Unknown
	}
	return TimeRemaining(s)
}

// IsUnlimited reports whether t is the Unlimited sentinel.
func (t TimeRemaining) IsUnlimited() bool { return t == Unlimited }

// IsUnknown reports whether t is the Unknown sentinel.
func (t TimeRemaining) IsUnknown() bool { return t < 0 && t != Unlimited }

// Reading is a single snapshot of the generic battery sensor.
// Units:
// - Percent: 0-100
// - Remaining: seconds, or one of the sentinels
type Reading struct {
	Percent   float64
	PluggedIn bool
	Remaining TimeRemaining
}
