package powerinfo

import (
	"errors"
	"math"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// getAllBatteries is swapped out in tests.
var getAllBatteries = battery.GetAll

// sample is one battery as returned by the sensor.
type sample struct {
	*battery.Battery
	// stateRead is false when the sensor failed to read the state, so the
	// zero State does not mean Unknown.
	stateRead bool
}

// Read queries the OS battery sensor and returns a single Reading that
// aggregates all batteries the OS reports. It returns ErrNoBattery if there
// is none.
func Read() (*Reading, error) {
	batteries, err := getAllBatteries()

	var perBattery battery.Errors
	errors.As(err, &perBattery)

	var usable []sample
	for i, b := range batteries {
		if b == nil {
			continue
		}
		s := sample{Battery: b, stateRead: true}
		if i < len(perBattery) && perBattery[i] != nil {
			var fatal battery.ErrFatal
			if errors.As(perBattery[i], &fatal) {
				// The sensor hands back a zero Battery for these.
				logrus.WithError(perBattery[i]).WithField("battery", i).Debug("skipping unreadable battery")
				continue
			}
			var partial battery.ErrPartial
			if errors.As(perBattery[i], &partial) && partial.State != nil {
				s.stateRead = false
			}
		}
		usable = append(usable, s)
	}

	if err != nil {
		if len(usable) == 0 {
			return nil, pkgerrors.Wrap(err, "failed to query battery sensor")
		}
		// Some attributes could not be read. Use what we have.
		logrus.WithError(err).Debug("battery sensor returned partial data")
	}

	if len(usable) == 0 {
		return nil, ErrNoBattery
	}

	r := newReading(usable)
	logrus.WithFields(logrus.Fields{
		"batteries": len(usable),
		"percent":   r.Percent,
		"pluggedIn": r.PluggedIn,
		"remaining": int64(r.Remaining),
	}).Debug("battery sensor read")

	return r, nil
}

// powerSource returns the battery whose state decides the power source:
// the first one with a known state, else the first one whose state was read.
func powerSource(samples []sample) (*battery.Battery, bool) {
	for _, s := range samples {
		if s.stateRead && s.State != battery.Unknown {
			return s.Battery, true
		}
	}
	for _, s := range samples {
		if s.stateRead {
			return s.Battery, true
		}
	}
	return nil, false
}

func newReading(samples []sample) *Reading {
	var current, full, rate float64
	for _, b := range samples {
		current += b.Current
		if b.Full != 0 {
			full += b.Full
		} else {
			full += b.Design
		}
		rate += math.Abs(b.ChargeRate)
	}

	var percent float64
	if full > 0 {
		percent = math.Min(math.Max(current/full*100, 0), 100)
	}

	// Laptops with two batteries still share one adapter.
	src, ok := powerSource(samples)
	if !ok {
		return &Reading{Percent: percent, Remaining: Unknown}
	}
	pluggedIn := src.State != battery.Discharging && src.State != battery.Empty

	remaining := Unknown
	switch {
	case pluggedIn:
		remaining = Unlimited
	case rate > 0:
		remaining = Seconds(int64(current / rate * 3600))
	}

	return &Reading{
		Percent:   percent,
		PluggedIn: pluggedIn,
		Remaining: remaining,
	}
}
