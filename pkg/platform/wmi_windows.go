//go:build windows

package platform

import (
	"github.com/StackExchange/wmi"
	pkgerrors "github.com/pkg/errors"
)

func queryWin32Batteries() ([]win32Battery, error) {
	var dst []win32Battery
	err := wmi.Query("SELECT Name, BatteryStatus, FullChargeCapacity, DesignCapacity FROM Win32_Battery", &dst)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "wmi Win32_Battery query failed")
	}
	return dst, nil
}
