// Package report assembles the battery report, saves it to a timestamped
// text file and echoes it to the console.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battreport/pkg/platform"
	"github.com/charlie0129/battreport/pkg/powerinfo"
)

const (
	headerTitle   = "--- ОТЧЕТ О БАТАРЕЕ ---"
	detailedTitle = "--- ДЕТАЛЬНАЯ ИНФОРМАЦИЯ О БАТАРЕЕ ---"

	headerTimeLayout = "2006-01-02 15:04:05"
	fileTimeLayout   = "20060102_150405"
)

// Report is the assembled text and the moment it describes.
type Report struct {
	Time time.Time
	Host platform.Host
	Text string
	// Path is the file the report was saved to, empty if saving failed.
	Path string
}

// Generator produces one report per Run. Zero-value fields select the real
// sensor, host, clock and stdout.
type Generator struct {
	OutputDir string
	Stdout    io.Writer

	Now        func() time.Time
	ReadSensor func() (*powerinfo.Reading, error)
	DetectHost func(ctx context.Context) platform.Host
	// SelectAdapter picks the adapter for the host OS.
	SelectAdapter func(identity string, opts platform.Options) platform.Adapter
}

func (g *Generator) withDefaults() *Generator {
	c := *g
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.ReadSensor == nil {
		c.ReadSensor = powerinfo.Read
	}
	if c.DetectHost == nil {
		c.DetectHost = platform.DetectHost
	}
	if c.SelectAdapter == nil {
		c.SelectAdapter = platform.Select
	}
	return &c
}

// FileName returns the report file name for t.
func FileName(t time.Time) string {
	return "battery_report_" + t.Format(fileTimeLayout) + ".txt"
}

// Run gathers everything, writes the report file and prints the report.
// The returned error is the file write failure, if any; the report has been
// printed either way.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	g = g.withDefaults()

	now := g.Now()
	h := g.DetectHost(ctx)

	r := &Report{Time: now, Host: h}
	r.Text = g.assemble(ctx, now, h)

	path := filepath.Join(g.OutputDir, FileName(now))
	writeErr := save(path, r.Text)
	if writeErr != nil {
		logrus.WithError(writeErr).WithField("path", path).Error("failed to save battery report")
		fmt.Fprintln(g.Stdout, color.RedString("Не удалось сохранить отчет о батарее: %v", writeErr))
	} else {
		r.Path = path
		logrus.WithField("path", path).Debug("battery report saved")
		fmt.Fprintln(g.Stdout, color.GreenString("Отчет о батарее успешно сохранен в файле: %s", path))
	}

	fmt.Fprint(g.Stdout, "\n"+r.Text)

	return r, writeErr
}

func (g *Generator) assemble(ctx context.Context, now time.Time, h platform.Host) string {
	var sb strings.Builder

	sb.WriteString(headerTitle + "\n")
	sb.WriteString("Дата и время: " + now.Format(headerTimeLayout) + "\n")
	sb.WriteString("Система: " + h.String() + "\n\n")

	sb.WriteString(basicSection(g.ReadSensor))

	adapter := g.SelectAdapter(h.OS, platform.Options{
		Now:       now,
		OutputDir: g.OutputDir,
	})
	sb.WriteString(detailedSection(ctx, adapter))

	return sb.String()
}

func basicSection(read func() (*powerinfo.Reading, error)) string {
	reading, err := read()
	if err != nil {
		logrus.WithError(err).Info("battery sensor reading is not available")
		return powerinfo.FormatUnavailable(err)
	}
	return reading.Format()
}

func detailedSection(ctx context.Context, adapter platform.Adapter) string {
	logrus.WithField("platform", adapter.Name()).Debug("collecting detailed battery info")

	var sb strings.Builder
	sb.WriteString("\n" + detailedTitle + "\n")

	details, err := adapter.Collect(ctx)
	if err != nil {
		logrus.WithError(err).WithField("platform", adapter.Name()).Warn("failed to collect detailed battery info")
		sb.WriteString(platform.Describe(err) + "\n")
		return sb.String()
	}

	sb.WriteString(details.String())
	return sb.String()
}

func save(path, text string) error {
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
