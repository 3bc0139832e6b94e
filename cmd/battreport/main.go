package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/battreport/pkg/config"
	"github.com/charlie0129/battreport/pkg/report"
)

func setupLogger(level logrus.Level) {
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	opts := config.Default()

	cmd := &cobra.Command{
		Use:   "battreport",
		Short: "battreport writes a battery status report to disk and console",
		Long: `battreport reads the battery sensor of this machine, collects extended
battery attributes the way the operating system exposes them (WMI and powercfg
on Windows, sysfs on Linux, system_profiler on macOS) and writes a
human-readable report to battery_report_<YYYYMMDD_HHMMSS>.txt.

The report is printed to stdout as well, even if the file cannot be written.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := opts.Validate()
			if err != nil {
				return err
			}
			setupLogger(level)
			if opts.NoColor {
				color.NoColor = true
			}
			logrus.WithFields(opts.LogrusFields()).Debug("options parsed")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := &report.Generator{
				OutputDir: opts.OutputDir,
				Stdout:    cmd.OutOrStdout(),
			}
			// Saving failures are already on the console. The run itself
			// never fails.
			if _, err := g.Run(cmd.Context()); err != nil {
				logrus.Debugf("report finished without a file: %v", err)
			}
			return nil
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&opts.LogLevel, "log-level", "l", opts.LogLevel, "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVarP(&opts.OutputDir, "output-dir", "o", opts.OutputDir, "directory the report files are written to")
	globalFlags.BoolVar(&opts.NoColor, "no-color", false, "disable colored console output")

	return cmd
}
