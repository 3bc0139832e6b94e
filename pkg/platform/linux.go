package platform

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battreport/pkg/kvparse"
)

// DefaultBatteryDir is the sysfs directory of the first battery.
const DefaultBatteryDir = "/sys/class/power_supply/BAT0"

const cycleCountUnavailable = "Информация о циклах зарядки-разрядки недоступна."

// LinuxAdapter reads the power_supply class of sysfs.
type LinuxAdapter struct {
	dir string
}

// NewLinuxAdapter returns an adapter reading the battery in dir.
func NewLinuxAdapter(dir string) *LinuxAdapter {
	return &LinuxAdapter{dir: dir}
}

func (a *LinuxAdapter) Name() string { return string(Linux) }

func (a *LinuxAdapter) Collect(_ context.Context) (Details, error) {
	ueventPath := filepath.Join(a.dir, "uevent")

	data, err := os.ReadFile(ueventPath)
	if err != nil {
		logrus.WithError(err).WithField("path", ueventPath).Warn("failed to read battery uevent")
		return nil, &AdapterError{Platform: Linux, Kind: SourceMissing, Err: err}
	}

	m, err := kvparse.ParseString(string(data), "=")
	if err != nil {
		return nil, &AdapterError{Platform: Linux, Kind: ParseFailed, Err: pkgerrors.Wrapf(err, "failed to parse %s", ueventPath)}
	}

	var d Details
	model, ok := m.Lookup("POWER_SUPPLY_MODEL_NAME", "MODEL_NAME")
	if !ok || model == "" {
		model = unknownValue
	}
	d.Add("Модель", model)
	d.Add("Текущее напряжение", scaled(m, "POWER_SUPPLY_VOLTAGE_NOW", 1e6, "V"))
	d.Add("Емкость", energyOrCharge(m, "NOW"))
	d.Add("Полная емкость", energyOrCharge(m, "FULL"))
	d.Add("Текущий статус", m.Get("POWER_SUPPLY_STATUS", unknownValue))

	cycleCount, err := readTrimmed(filepath.Join(a.dir, "cycle_count"))
	if err != nil || cycleCount == "" {
		logrus.WithError(err).Debug("cycle count is not available")
		d.Note(cycleCountUnavailable)
	} else {
		d.Add("Количество циклов зарядки-разрядки", cycleCount)
	}

	return d, nil
}

// energyOrCharge formats POWER_SUPPLY_ENERGY_<suffix> in mWh, or
// POWER_SUPPLY_CHARGE_<suffix> in mAh for batteries that report charge.
func energyOrCharge(m kvparse.Map, suffix string) string {
	if _, ok := m["POWER_SUPPLY_ENERGY_"+suffix]; ok {
		return scaled(m, "POWER_SUPPLY_ENERGY_"+suffix, 1e3, "mWh")
	}
	if _, ok := m["POWER_SUPPLY_CHARGE_"+suffix]; ok {
		return scaled(m, "POWER_SUPPLY_CHARGE_"+suffix, 1e3, "mAh")
	}
	return unknownValue
}

// scaled divides the integer value of key by div and appends unit.
func scaled(m kvparse.Map, key string, div float64, unit string) string {
	raw, ok := m[key]
	if !ok {
		return unknownValue
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": raw}).Debug("non-numeric uevent value")
		return unknownValue
	}
	return formatDecimal(float64(v)/div) + " " + unit
}

// formatDecimal keeps at least one fractional digit: 12 -> "12.0".
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func readTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
