package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vectorkit/internal/logger"
	"github.com/joshuapare/vectorkit/vector"
)

var (
	// Global flags
	verbose       bool
	quiet         bool
	jsonOut       bool
	allocatorName string
	traceAlloc    bool
)

var rootCmd = &cobra.Command{
	Use:   "vecctl",
	Short: "Exercise the vectorkit containers",
	Long: `vecctl drives the vectorkit growable array and stack from the command
line. Each command builds a vector from its arguments, applies one operation
and prints the result, optionally with allocator statistics and a trace of
every allocation.

Negative numbers must follow "--" so they are not read as flags.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&allocatorName, "allocator", "heap", "Storage allocator: heap or pool")
	rootCmd.PersistentFlags().
		BoolVar(&traceAlloc, "trace-alloc", false, "Log every allocation to stderr")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		printError("%v\n", err)
		os.Exit(1)
	}
}

// initLogging enables the debug logger when allocation tracing is on.
func initLogging() {
	logger.Init(logger.Options{
		Enabled: traceAlloc,
		JSON:    jsonOut,
		Level:   slog.LevelDebug,
	})
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseInts converts command arguments to integers.
func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", a)
		}
		values = append(values, n)
	}
	return values, nil
}

// joinInts formats values separated by single spaces.
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// vectorResult is the JSON shape of a vector after an operation.
type vectorResult struct {
	Values   []int `json:"values"`
	Size     int   `json:"size"`
	Capacity int   `json:"capacity"`
}

func snapshot(v *vector.Vector[int]) vectorResult {
	values := make([]int, 0, v.Size())
	values = append(values, v.Data()...)
	return vectorResult{Values: values, Size: v.Size(), Capacity: v.Cap()}
}

// printVector prints the contents of v, or its JSON snapshot.
func printVector(v *vector.Vector[int]) error {
	if jsonOut {
		return printJSON(snapshot(v))
	}
	printVerbose("size=%d cap=%d\n", v.Size(), v.Cap())
	printInfo("%s\n", joinInts(v.Data()))
	return nil
}
