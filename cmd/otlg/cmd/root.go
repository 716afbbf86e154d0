// Package cmd implements the otlg command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "otlg",
	Short: "OpenTraceLibGen - KiCad symbol and footprint generator",
	Long: `OpenTraceLibGen (otlg) turns component pin lists into KiCad
library files:
  - schematic symbols (.kicad_sym)
  - PCB footprints (.kicad_mod)

Pin lists can come from JSON, spreadsheets (.xlsx), or the plain-text
pin description format.

Examples:
  otlg gen mcu.json --package qfp          # symbol + footprint
  otlg gen pins.txt --package dip -o lib/  # DIP into lib/
  otlg pins mcu.xlsx                       # show the parsed pin table`,
	Version: "0.9.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.WarnLevel
		if verbose {
			level = log.DebugLevel
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		})
		cmd.SetContext(withLogger(cmd.Context(), logger))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with package defaults")
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to the
// package default so commands always have one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
