package powerinfo

import "errors"

// ErrNoBattery is returned when the sensor reports no battery at all,
// e.g. on a desktop machine.
var ErrNoBattery = errors.New("no battery found")
