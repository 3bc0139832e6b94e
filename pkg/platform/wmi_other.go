//go:build !windows

package platform

func queryWin32Batteries() ([]win32Battery, error) {
	return nil, ErrWMIUnavailable
}
