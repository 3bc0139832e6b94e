// Package platform detects the host operating system and collects extended
// battery attributes through the mechanism native to that system: WMI and
// powercfg on Windows, sysfs on Linux and system_profiler on macOS.
package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"
)

// Identity is an operating system name as reported by the host.
type Identity string

const (
	Windows Identity = "windows"
	Linux   Identity = "linux"
	Darwin  Identity = "darwin"
)

// Normalize maps both runtime.GOOS values and capitalised system names
// ("Windows", "Darwin") to an Identity.
func Normalize(s string) Identity {
	return Identity(strings.ToLower(strings.TrimSpace(s)))
}

// IsSupported reports whether an adapter exists for id.
func (id Identity) IsSupported() bool {
	switch Normalize(string(id)) {
	case Windows, Linux, Darwin:
		return true
	}
	return false
}

// Host describes the machine the report is generated on.
type Host struct {
	// OS is the raw operating system name, e.g. "linux".
	OS              string
	Hostname        string
	Platform        string
	PlatformVersion string
}

// String returns a one-line description such as "ubuntu 22.04 (linux)".
func (h Host) String() string {
	var parts []string
	if h.Platform != "" {
		parts = append(parts, h.Platform)
	}
	if h.PlatformVersion != "" {
		parts = append(parts, h.PlatformVersion)
	}
	desc := strings.Join(parts, " ")
	if desc == "" {
		desc = h.OS
	} else if h.OS != "" && !strings.EqualFold(desc, h.OS) {
		desc += " (" + h.OS + ")"
	}
	if h.Hostname != "" {
		desc = h.Hostname + ", " + desc
	}
	return desc
}

// getHostInfo is swapped out in tests.
var getHostInfo = host.InfoWithContext

// DetectHost returns the host description. The OS always falls back to
// runtime.GOOS, so the result can be used for dispatch even when the host
// information cannot be read.
func DetectHost(ctx context.Context) Host {
	h := Host{OS: runtime.GOOS}

	info, err := getHostInfo(ctx)
	if err != nil || info == nil {
		logrus.WithError(err).Debug("failed to read host info, using runtime.GOOS")
		return h
	}

	if info.OS != "" {
		h.OS = info.OS
	}
	h.Hostname = info.Hostname
	h.Platform = info.Platform
	h.PlatformVersion = info.PlatformVersion

	logrus.WithFields(logrus.Fields{
		"os":              h.OS,
		"platform":        h.Platform,
		"platformVersion": h.PlatformVersion,
	}).Debug("host detected")

	return h
}
