// Setupvar-builder turns UEFI IFR text reports into setup_var.efi scripts.
//
// It parses the verbose output of IFRExtractor, presents the BIOS
// settings found there, and compiles a user-supplied overrides file into
// a script of setup_var.efi commands that apply only the values that
// differ from the firmware defaults.
//
// Usage:
//
//	setupvar-builder [command] [flags]
//
// See 'setupvar-builder --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/setupvar/builder/internal/logging"
	"github.com/setupvar/builder/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "setupvar-builder",
	Short: "BIOS settings script builder",
	Long: `Build setup_var.efi scripts from UEFI IFR text reports.

Point it at the verbose report produced by IFRExtractor and it parses
the BIOS settings (one-of choices, numeric fields and checkboxes) along
with their firmware defaults. The export command then compiles an
overrides file into a script of setup_var.efi write commands, skipping
every value that already matches its default.`,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitializeFromEnv()
	},
	SilenceUsage: true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("setupvar-builder %s (commit: %s)\n", version.Version, version.Commit)
	},
}
