package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// win32Battery mirrors the Win32_Battery WMI class. Capacities are often
// NULL on consumer laptops, hence the pointers.
type win32Battery struct {
	Name               string
	BatteryStatus      uint16
	FullChargeCapacity *uint32
	DesignCapacity     *uint32
}

// queryBatteries is swapped out in tests.
var queryBatteries = queryWin32Batteries

// WindowsAdapter reads Win32_Battery through WMI and asks powercfg for its
// HTML battery report.
type WindowsAdapter struct {
	now       time.Time
	outputDir string
	run       CommandRunner
	query     func() ([]win32Battery, error)
}

func (a *WindowsAdapter) Name() string { return string(Windows) }

// Collect never fails. WMI and powercfg errors end up in the details.
func (a *WindowsAdapter) Collect(ctx context.Context) (Details, error) {
	var d Details

	batteries, err := a.query()
	switch {
	case err != nil:
		logrus.WithError(err).Warn("failed to query Win32_Battery")
		d.Note(Describe(&AdapterError{Platform: Windows, Kind: DependencyMissing, Err: err}))
	case len(batteries) == 0:
		d.Note("WMI не вернул ни одной батареи.")
	}

	for _, b := range batteries {
		d.Add("Имя", orUnknown(b.Name))
		d.Add("Статус", formatBatteryStatus(b.BatteryStatus))
		d.Add("Полная зарядная емкость", formatCapacity(b.FullChargeCapacity))
		d.Add("Проектная емкость", formatCapacity(b.DesignCapacity))
	}

	reportPath := filepath.Join(a.outputDir, "battery_report_"+a.now.Format("20060102_150405")+".html")
	if _, err := a.run(ctx, "powercfg", "/batteryreport", "/output", reportPath); err != nil {
		logrus.WithError(err).WithField("path", reportPath).Warn("powercfg battery report failed")
		d.Note(fmt.Sprintf("Не удалось сгенерировать отчет о батарее: %v", err))
	} else {
		d.Add("Отчет о батарее сохранен в файле", reportPath)
	}

	return d, nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownValue
	}
	return s
}

func formatCapacity(c *uint32) string {
	if c == nil {
		return unknownValue
	}
	return strconv.FormatUint(uint64(*c), 10) + " mWh"
}

// See the BatteryStatus property of Win32_Battery.
var batteryStatusNames = map[uint16]string{
	1:  "разряжается",
	2:  "питание от сети",
	3:  "полностью заряжена",
	4:  "низкий заряд",
	5:  "критический заряд",
	6:  "заряжается",
	7:  "заряжается, высокий заряд",
	8:  "заряжается, низкий заряд",
	9:  "заряжается, критический заряд",
	10: "не определено",
	11: "частично заряжена",
}

func formatBatteryStatus(code uint16) string {
	if name, ok := batteryStatusNames[code]; ok {
		return fmt.Sprintf("%d (%s)", code, name)
	}
	return strconv.Itoa(int(code))
}
