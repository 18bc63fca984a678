package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/setupvar/builder/internal/ifr"
	"github.com/setupvar/builder/internal/overrides"
	"github.com/setupvar/builder/internal/script"
	"github.com/setupvar/builder/internal/ui"
	"github.com/setupvar/builder/internal/version"
)

// Command flags
var (
	outputFormat  string
	overridesPath string
	outputPath    string
	withReboot    bool
	noHeader      bool
	plainOutput   bool
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
}

// showCmd parses a report and displays the settings found in it
var showCmd = &cobra.Command{
	Use:   "show <report>",
	Short: "Show BIOS settings from an IFR report",
	Long: `Parse an IFRExtractor verbose report and display the settings it
contains, grouped by VarStore in the order they appear in the firmware.

One-of settings list their options with the declared default marked,
numeric settings show their range and default, and checkboxes show
their default state.`,
	Example: `  # Styled listing on a terminal
  setupvar-builder show report.txt

  # One line per setting, suitable for grep
  setupvar-builder show report.txt --format compact

  # JSON output for scripting
  setupvar-builder show report.txt --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
	showCmd.Flags().BoolVar(&plainOutput, "plain", false, "Disable styled output even on a terminal")
}

func runShow(cmd *cobra.Command, args []string) error {
	model, err := ifr.ParseFile(args[0])
	if err != nil {
		return err
	}

	switch outputFormat {
	case "compact":
		fmt.Println(model.FormatCompact())
	case "json":
		data, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		fallthrough
	default:
		if !plainOutput && ui.IsTerminal() {
			fmt.Print(ui.RenderModel(model, ui.GetTerminalWidth()))
		} else {
			fmt.Println(model.FormatDetailed())
		}
	}

	return nil
}

// exportCmd compiles an overrides file against a report into a script
var exportCmd = &cobra.Command{
	Use:   "export <report>",
	Short: "Compile an overrides file into a setup_var.efi script",
	Long: `Parse an IFRExtractor verbose report, validate the overrides file
against it and compile the selections into a setup_var.efi script.

Only values that differ from the firmware defaults produce commands, so
rerunning the script is always safe. Each command is preceded by a
comment naming the setting and the chosen value. With --reboot (or
"reboot: true" in the overrides file) a trailing command makes the
firmware re-read its variables and restart.`,
	Example: `  # Write the script next to the report
  setupvar-builder export report.txt --overrides changes.yaml --output setup.nsh

  # Print the script to stdout
  setupvar-builder export report.txt --overrides changes.yaml

  # Append the read+reboot directive
  setupvar-builder export report.txt --overrides changes.yaml --reboot`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&overridesPath, "overrides", "", "Overrides YAML file (required)")
	exportCmd.Flags().StringVar(&outputPath, "output", "", "Script output path (default: stdout)")
	exportCmd.Flags().BoolVar(&withReboot, "reboot", false, "Append trailing read+reboot directive")
	exportCmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the attribution header")
	_ = exportCmd.MarkFlagRequired("overrides")
}

func runExport(cmd *cobra.Command, args []string) error {
	model, err := ifr.ParseFile(args[0])
	if err != nil {
		return err
	}

	file, err := overrides.Load(overridesPath)
	if err != nil {
		return err
	}

	sel, err := file.Apply(model)
	if err != nil {
		return err
	}

	opts := script.Options{
		Reboot: withReboot || file.Reboot,
	}
	if !noHeader {
		opts.Header = attributionHeader()
	}

	compiled := script.Compile(model, sel, opts)
	rendered := compiled.Render()

	if outputPath == "" {
		fmt.Print(rendered)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	fmt.Printf("Wrote %d directive(s) to %s\n", len(compiled.Directives), outputPath)
	return nil
}

// attributionHeader identifies the generating tool at the top of the
// exported script.
func attributionHeader() string {
	return fmt.Sprintf("# Generated by setupvar-builder %s\n# Review before running from the UEFI shell.", version.Version)
}
