package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at link time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(args)
		},
	}
}

// buildInfo is the JSON shape of the version command.
type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Built     string `json:"built"`
	GoVersion string `json:"goVersion"`
	Module    string `json:"module,omitempty"`
}

func currentBuild() buildInfo {
	b := buildInfo{
		Version:   version,
		Commit:    commit,
		Built:     date,
		GoVersion: runtime.Version(),
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		b.Module = info.Main.Path
	}
	return b
}

func runVersion(_ []string) error {
	b := currentBuild()
	if jsonOut {
		return printJSON(b)
	}
	printInfo("vecctl %s (%s)\n", b.Version, b.GoVersion)
	printInfo("  commit: %s\n", b.Commit)
	printInfo("  built:  %s\n", b.Built)
	printVerbose("  module: %s\n", b.Module)
	return nil
}
