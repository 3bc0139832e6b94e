package powerinfo

import (
	"errors"
	"testing"

	"github.com/distatus/battery"
)

func stubBatteries(t *testing.T, bats []*battery.Battery, err error) {
	t.Helper()
	orig := getAllBatteries
	getAllBatteries = func() ([]*battery.Battery, error) { return bats, err }
	t.Cleanup(func() { getAllBatteries = orig })
}

func TestRead(t *testing.T) {
	tests := []struct {
		name      string
		batteries []*battery.Battery
		err       error
		want      Reading
		wantErr   error
		wantFail  bool
	}{
		{
			name: "charging on AC",
			batteries: []*battery.Battery{
				{State: battery.Charging, Current: 40000, Full: 50000, ChargeRate: 20000},
			},
			want: Reading{Percent: 80, PluggedIn: true, Remaining: Unlimited},
		},
		{
			name: "full on AC",
			batteries: []*battery.Battery{
				{State: battery.Full, Current: 50000, Full: 50000},
			},
			want: Reading{Percent: 100, PluggedIn: true, Remaining: Unlimited},
		},
		{
			name: "discharging with known rate",
			batteries: []*battery.Battery{
				{State: battery.Discharging, Current: 30000, Full: 60000, ChargeRate: 20000},
			},
			want: Reading{Percent: 50, PluggedIn: false, Remaining: 5400},
		},
		{
			name: "discharging without rate",
			batteries: []*battery.Battery{
				{State: battery.Discharging, Current: 30000, Full: 60000},
			},
			want: Reading{Percent: 50, PluggedIn: false, Remaining: Unknown},
		},
		{
			name: "two batteries are summed",
			batteries: []*battery.Battery{
				{State: battery.Discharging, Current: 10000, Full: 40000, ChargeRate: 5000},
				{State: battery.Discharging, Current: 30000, Full: 40000, ChargeRate: 5000},
			},
			want: Reading{Percent: 50, PluggedIn: false, Remaining: 14400},
		},
		{
			name: "design capacity when full is missing",
			batteries: []*battery.Battery{
				{State: battery.Charging, Current: 25000, Design: 100000},
			},
			want: Reading{Percent: 25, PluggedIn: true, Remaining: Unlimited},
		},
		{
			name: "partial error still yields a reading",
			batteries: []*battery.Battery{
				{State: battery.Full, Current: 50000, Full: 50000},
			},
			err:  errors.New("voltage unavailable"),
			want: Reading{Percent: 100, PluggedIn: true, Remaining: Unlimited},
		},
		{
			name: "fatally failed battery is skipped",
			batteries: []*battery.Battery{
				{},
				{State: battery.Discharging, Current: 30000, Full: 60000, ChargeRate: 20000},
			},
			err:  battery.Errors{battery.ErrFatal{Err: errors.New("no such device")}, nil},
			want: Reading{Percent: 50, PluggedIn: false, Remaining: 5400},
		},
		{
			name: "power source from first known state",
			batteries: []*battery.Battery{
				{State: battery.Unknown, Current: 10000, Full: 40000},
				{State: battery.Discharging, Current: 30000, Full: 40000, ChargeRate: 5000},
			},
			want: Reading{Percent: 50, PluggedIn: false, Remaining: 28800},
		},
		{
			name: "unreadable state",
			batteries: []*battery.Battery{
				{Current: 30000, Full: 60000, ChargeRate: 20000},
			},
			err:  battery.Errors{battery.ErrPartial{State: errors.New("invalid argument")}},
			want: Reading{Percent: 50, PluggedIn: false, Remaining: Unknown},
		},
		{
			name:      "all batteries failed",
			batteries: []*battery.Battery{{}},
			err:       battery.Errors{battery.ErrFatal{Err: errors.New("no such device")}},
			wantFail:  true,
		},
		{
			name:    "no battery",
			wantErr: ErrNoBattery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBatteries(t, tt.batteries, tt.err)

			got, err := Read()
			if tt.wantFail {
				if err == nil || errors.Is(err, ErrNoBattery) {
					t.Fatalf("Read() error = %v, want a sensor error", err)
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Read() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("Read() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestReadSensorFailure(t *testing.T) {
	sensorErr := errors.New("upower is not running")
	stubBatteries(t, nil, sensorErr)

	_, err := Read()
	if err == nil {
		t.Fatal("Read() expected error")
	}
	if errors.Is(err, ErrNoBattery) {
		t.Errorf("Read() error = %v, must not be ErrNoBattery", err)
	}
	if !errors.Is(err, sensorErr) {
		t.Errorf("Read() error = %v, want it to wrap %v", err, sensorErr)
	}
}
