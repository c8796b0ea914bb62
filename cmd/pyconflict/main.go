package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/frederic-klein/pyconflict/internal/conflict"
	"github.com/frederic-klein/pyconflict/internal/pyspec"
	"github.com/frederic-klein/pyconflict/internal/report"
	"github.com/frederic-klein/pyconflict/internal/requirements"
)

var (
	pkg1         string
	pkg2         string
	requirePath  string
	outputPath   string
	outputFormat string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pyconflict",
		Short: "Detects version conflicts between Python package specifiers",
		Long:  "pyconflict checks whether two Python-style package version constraints can be satisfied by a common version, or whether they are mutually exclusive.",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check two package specifiers for a version conflict",
		RunE:  runCheck,
	}

	checkCmd.Flags().StringVarP(&pkg1, "pkg1", "1", "", "First package with version constraint (e.g., \"requests>=2.0.0\")")
	checkCmd.Flags().StringVarP(&pkg2, "pkg2", "2", "", "Second package with version constraint (e.g., \"requests<3.0.0\")")
	checkCmd.MarkFlagRequired("pkg1")
	checkCmd.MarkFlagRequired("pkg2")

	fileCmd := &cobra.Command{
		Use:   "check-file",
		Short: "Check all specifiers in a requirements file against each other",
		RunE:  runCheckFile,
	}

	fileCmd.Flags().StringVarP(&requirePath, "requirements", "f", "./requirements.txt", "Input requirements file path")
	fileCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write report to file instead of stdout")
	fileCmd.Flags().StringVar(&outputFormat, "format", "text", "Report format: text or yaml")
	fileCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fileCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := pyspec.Parse(pkg1)
	if err != nil {
		return err
	}
	b, err := pyspec.Parse(pkg2)
	if err != nil {
		return err
	}

	fmt.Println("\nAnalyzing potential conflicts between:")
	fmt.Printf("  Package 1: %s\n", a)
	fmt.Printf("  Package 2: %s\n\n", b)

	switch conflict.Check(a, b) {
	case conflict.ResultDifferentPackages:
		color.Green("No conflict: Different packages")
	case conflict.ResultConflict:
		color.New(color.FgRed, color.Bold).Println("CONFLICT DETECTED!")
		fmt.Println("The version requirements are mutually exclusive.")
	case conflict.ResultNoConflict:
		color.Green("No conflict detected")
		fmt.Println("The version requirements are compatible.")
	}

	return nil
}

func runCheckFile(cmd *cobra.Command, args []string) error {
	log := func(format string, args ...interface{}) {
		if verbose {
			fmt.Printf(format+"\n", args...)
		}
	}

	log("Parsing requirements file: %s", requirePath)
	parser := requirements.NewParser()
	parseResult, err := parser.Parse(requirePath)
	if err != nil {
		return fmt.Errorf("parsing requirements: %w", err)
	}

	if len(parseResult.Specifiers) == 0 {
		return fmt.Errorf("no specifiers found in %s", requirePath)
	}
	log("Found %d specifiers", len(parseResult.Specifiers))

	findings := conflict.CheckAll(parseResult.Specifiers)
	log("Checked %d same-package pairs", len(findings))

	out := os.Stdout
	if outputPath != "" {
		outFile, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer outFile.Close()
		out = outFile
	}

	emitter := report.NewEmitter(out)
	switch outputFormat {
	case "yaml":
		err = emitter.EmitYAML(findings)
	case "text":
		err = emitter.Emit(findings)
	default:
		return fmt.Errorf("unknown report format: %s", outputFormat)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
