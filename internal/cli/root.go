// Package cli wires the scaler command tree.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RootConfig carries the global flags shared by every subcommand.
type RootConfig struct {
	ConfigPath string
	LogLevel   string
	NoColor    bool
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "scaler",
		Short:         "Risk-based position sizing and compounding for daily P&L",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&rc.NoColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setupLogging(rc)
	}

	// Subcommands
	cmd.AddCommand(
		newRunCmd(rc),
		newInspectCmd(rc),
		newSampleCmd(),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("scaler (dev)")
		},
	})

	return cmd
}

func setupLogging(rc *RootConfig) error {
	lvl, err := zerolog.ParseLevel(rc.LogLevel)
	if err != nil {
		return fmt.Errorf("bad --log-level %q: %w", rc.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    rc.NoColor,
	})
	return nil
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
