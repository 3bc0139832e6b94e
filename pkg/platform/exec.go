package platform

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CommandRunner runs an external utility and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand blocks until the utility exits. Its stderr is attached to the
// returned error.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	logrus.WithFields(logrus.Fields{
		"command": name,
		"args":    args,
	}).Debug("running command")

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return out, pkgerrors.Wrapf(err, "%s: %s", name, msg)
			}
		}
		return out, pkgerrors.Wrapf(err, "failed to run %s", name)
	}

	logrus.WithFields(logrus.Fields{
		"command": name,
		"bytes":   len(out),
	}).Trace("command finished")

	return out, nil
}
