package platform

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battreport/pkg/kvparse"
)

// DarwinAdapter parses the power section of system_profiler.
type DarwinAdapter struct {
	run CommandRunner
}

// NewDarwinAdapter returns an adapter that executes commands through run.
func NewDarwinAdapter(run CommandRunner) *DarwinAdapter {
	if run == nil {
		run = runCommand
	}
	return &DarwinAdapter{run: run}
}

func (a *DarwinAdapter) Name() string { return string(Darwin) }

func (a *DarwinAdapter) Collect(ctx context.Context) (d Details, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("panic while collecting macOS battery details: %v", r)
			d, err = nil, &AdapterError{Platform: Darwin, Kind: ParseFailed, Err: pkgerrors.Errorf("%v", r)}
		}
	}()

	out, err := a.run(ctx, "system_profiler", "SPPowerDataType")
	if err != nil {
		logrus.WithError(err).Warn("system_profiler failed")
		return nil, &AdapterError{Platform: Darwin, Kind: CommandFailed, Err: err}
	}

	m, err := kvparse.ParseString(string(out), ": ")
	if err != nil {
		return nil, &AdapterError{Platform: Darwin, Kind: ParseFailed, Err: err}
	}

	d.Add("Имя", m.Get("Name", unknownValue))
	d.Add("Состояние", m.Get("Condition", unknownValue))
	d.Add("Циклы зарядки", m.Get("Cycle Count", unknownValue))
	d.Add("Полный зарядный ресурс", m.Get("Full Charge Capacity (mAh)", unknownValue)+" mAh")
	d.Add("Текущее зарядное состояние", m.Get("Charge Remaining (mAh)", unknownValue)+" mAh")

	return d, nil
}
