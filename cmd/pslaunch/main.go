package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mhelske/pslaunch/pkg/interpcheck"
	"github.com/mhelske/pslaunch/pkg/launch"
	"github.com/mhelske/pslaunch/pkg/report"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "pslaunch -Script <script_path> [parameters]",
	Short:   "Hardened launcher for Windows PowerShell scripts",
	Long:    "pslaunch validates a script path and its parameters, then starts the\ntrusted PowerShell interpreter directly (no shell) with hardened flags.",
	Version: Version,
	// The external surface is the fixed "-Script" token contract, which is
	// not pflag-shaped, so the raw argv is handled in runLaunch.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runLaunch,
}

func runLaunch(_ *cobra.Command, _ []string) error {
	code := runPipeline(os.Args, interpcheck.Supported(), report.NewPlatform(), launch.Options{})
	os.Exit(code)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
