package platform

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func u32(v uint32) *uint32 { return &v }

func newTestWindowsAdapter(run CommandRunner, batteries []win32Battery, err error) *WindowsAdapter {
	return &WindowsAdapter{
		now:       time.Date(2026, 10, 15, 9, 5, 3, 0, time.Local),
		outputDir: "reports",
		run:       run,
		query:     func() ([]win32Battery, error) { return batteries, err },
	}
}

func TestWindowsAdapterCollect(t *testing.T) {
	run, calls := fakeRunner("", nil)
	a := newTestWindowsAdapter(run, []win32Battery{
		{Name: "DELL 7FHHV", BatteryStatus: 2, FullChargeCapacity: u32(51200), DesignCapacity: u32(56000)},
	}, nil)

	d, err := a.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	reportPath := filepath.Join("reports", "battery_report_20261015_090503.html")
	want := "Имя: DELL 7FHHV\n" +
		"Статус: 2 (питание от сети)\n" +
		"Полная зарядная емкость: 51200 mWh\n" +
		"Проектная емкость: 56000 mWh\n" +
		"Отчет о батарее сохранен в файле: " + reportPath + "\n"
	if got := d.String(); got != want {
		t.Errorf("Collect() =\n%s\nwant\n%s", got, want)
	}

	wantCall := "powercfg /batteryreport /output " + reportPath
	if len(*calls) != 1 || (*calls)[0] != wantCall {
		t.Errorf("commands = %v, want [%s]", *calls, wantCall)
	}
}

func TestWindowsAdapterNullCapacities(t *testing.T) {
	run, _ := fakeRunner("", nil)
	a := newTestWindowsAdapter(run, []win32Battery{{Name: "", BatteryStatus: 42}}, nil)

	d, _ := a.Collect(context.Background())
	if got, _ := d.Get("Имя"); got != unknownValue {
		t.Errorf("Имя = %q, want %q", got, unknownValue)
	}
	if !strings.HasPrefix(d.String(), "Имя: "+unknownValue+"\n") {
		t.Errorf("Collect() = %q, want a named line for an empty battery name", d.String())
	}
	if got, _ := d.Get("Полная зарядная емкость"); got != unknownValue {
		t.Errorf("Полная зарядная емкость = %q", got)
	}
	if got, _ := d.Get("Статус"); got != "42" {
		t.Errorf("Статус = %q", got)
	}
}

func TestWindowsAdapterPowercfgFailure(t *testing.T) {
	run, _ := fakeRunner("", errors.New("exit status 1"))
	a := newTestWindowsAdapter(run, []win32Battery{
		{Name: "Internal", BatteryStatus: 1, FullChargeCapacity: u32(40000), DesignCapacity: u32(45000)},
	}, nil)

	d, err := a.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v, want nil", err)
	}
	got := d.String()
	if !strings.Contains(got, "Не удалось сгенерировать отчет о батарее: exit status 1") {
		t.Errorf("Collect() = %q, want powercfg failure", got)
	}
	if !strings.Contains(got, "Имя: Internal\n") {
		t.Errorf("Collect() = %q, WMI data must be kept", got)
	}
}

func TestWindowsAdapterWMIUnavailable(t *testing.T) {
	run, calls := fakeRunner("", nil)
	a := newTestWindowsAdapter(run, nil, ErrWMIUnavailable)

	d, err := a.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect() error = %v, want nil", err)
	}
	if !strings.Contains(d.String(), "Интерфейс WMI недоступен") {
		t.Errorf("Collect() = %q, want WMI instructions", d.String())
	}
	if len(*calls) != 1 {
		t.Errorf("powercfg should still run, commands = %v", *calls)
	}
}

func TestWindowsAdapterNoBatteries(t *testing.T) {
	run, _ := fakeRunner("", nil)
	d, _ := newTestWindowsAdapter(run, nil, nil).Collect(context.Background())
	if !strings.Contains(d.String(), "WMI не вернул ни одной батареи.") {
		t.Errorf("Collect() = %q", d.String())
	}
}
