//go:build ignore

// Validate-reports runs the IFR parser over a directory of real report
// dumps and prints aggregate statistics. Useful when checking parser
// behavior against dumps from firmware vendors it has not seen before.
//
// Usage:
//
//	go run tools/validate-reports.go <directory-or-file>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/setupvar/builder/internal/ifr"
)

// Statistics tracks parsing results across all processed files
type Statistics struct {
	TotalFiles    int
	ParseSuccess  int
	ParseFailure  int
	TotalSettings int
	OneOfCount    int
	NumericCount  int
	CheckBoxCount int
	WithDefault   int
	FailedFiles   []FailedFile
}

// FailedFile stores information about files that did not parse
type FailedFile struct {
	Path  string
	Error string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: validate-reports <directory-or-file>")
		fmt.Println("Example: validate-reports dumps/")
		fmt.Println("         validate-reports dumps/z690-extract.txt")
		os.Exit(1)
	}

	stats := &Statistics{}

	for _, path := range collectFiles(os.Args[1]) {
		processFile(path, stats)
	}

	printStatistics(stats)

	if stats.ParseFailure > 0 {
		os.Exit(1)
	}
}

func collectFiles(root string) []string {
	info, err := os.Stat(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !info.IsDir() {
		return []string{root}
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking %s: %v\n", root, err)
		os.Exit(1)
	}
	return files
}

func processFile(path string, stats *Statistics) {
	stats.TotalFiles++

	model, err := ifr.ParseFile(path)
	if err != nil {
		stats.ParseFailure++
		stats.FailedFiles = append(stats.FailedFiles, FailedFile{Path: path, Error: err.Error()})
		return
	}

	stats.ParseSuccess++
	stats.TotalSettings += model.Len()

	model.Each(func(store, offset string, s ifr.Setting) {
		switch v := s.(type) {
		case *ifr.OneOf:
			stats.OneOfCount++
			if v.DefaultSet {
				stats.WithDefault++
			}
		case *ifr.Numeric:
			stats.NumericCount++
			if v.DefaultSet {
				stats.WithDefault++
			}
		case *ifr.CheckBox:
			stats.CheckBoxCount++
			stats.WithDefault++
		}
	})

	fmt.Printf("%-50s %s\n", path, model.Summary())
}

func printStatistics(stats *Statistics) {
	fmt.Println()
	fmt.Println("=== Parse Statistics ===")
	fmt.Printf("Files:       %d (%d ok, %d failed)\n", stats.TotalFiles, stats.ParseSuccess, stats.ParseFailure)
	fmt.Printf("Settings:    %d total\n", stats.TotalSettings)
	fmt.Printf("  one-of:    %d\n", stats.OneOfCount)
	fmt.Printf("  numeric:   %d\n", stats.NumericCount)
	fmt.Printf("  checkbox:  %d\n", stats.CheckBoxCount)
	fmt.Printf("  w/default: %d\n", stats.WithDefault)

	if len(stats.FailedFiles) > 0 {
		fmt.Println("\n=== Failures ===")
		for _, f := range stats.FailedFiles {
			fmt.Printf("%s: %s\n", f.Path, f.Error)
		}
	}
}
