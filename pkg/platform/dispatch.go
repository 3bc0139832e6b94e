package platform

import (
	"context"
	"time"
)

// Adapter collects extended battery attributes on one platform.
//
// Collect returns an error only when nothing useful could be gathered;
// partial failures are reported inline as Details.
type Adapter interface {
	Name() string
	Collect(ctx context.Context) (Details, error)
}

// Options carry the run-wide values adapters need. Zero values select the
// defaults.
type Options struct {
	// Now is the report time. Files produced by adapters are named after it.
	Now time.Time
	// OutputDir is where adapters place additional report files.
	OutputDir string
	// BatteryDir is the sysfs directory of the Linux battery.
	BatteryDir string
	// Run executes external utilities.
	Run CommandRunner
}

func (o Options) withDefaults() Options {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.BatteryDir == "" {
		o.BatteryDir = DefaultBatteryDir
	}
	if o.Run == nil {
		o.Run = runCommand
	}
	return o
}

// Select returns the adapter for the OS identity id. Unknown identities get
// an adapter that only reports that the platform is unsupported.
func Select(id string, opts Options) Adapter {
	opts = opts.withDefaults()

	switch Normalize(id) {
	case Windows:
		return &WindowsAdapter{
			now:       opts.Now,
			outputDir: opts.OutputDir,
			run:       opts.Run,
			query:     queryBatteries,
		}
	case Linux:
		return NewLinuxAdapter(opts.BatteryDir)
	case Darwin:
		return NewDarwinAdapter(opts.Run)
	default:
		return &UnsupportedAdapter{identity: id}
	}
}
