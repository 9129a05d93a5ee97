package cmd

import (
	"fmt"
	"os"

	"workday-audit/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X workday-audit/cmd.Version=...".
var Version = "dev"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "workday-audit",
	Short: "Work schedule validator",
	Long: `workday-audit validates the work-day schedules kept in two spreadsheets.
It checks declared day counts, flags work on holidays and weekends, lists the
sites working on given days, and reconciles both spreadsheets site by site.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug level gives readable ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding .env and workdays.yaml")
	RootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Also write the results to this file")
	RootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output file format: json or yaml (default from the file extension)")
	RootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Exit with status 1 when a check fails")
}
