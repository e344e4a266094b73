package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/vectorkit/internal/logger"
	"github.com/joshuapare/vectorkit/vector"
)

var (
	growN       int
	growReserve int
)

func init() {
	cmd := newGrowCmd()
	cmd.Flags().IntVarP(&growN, "n", "n", 16, "Number of values to push")
	cmd.Flags().IntVar(&growReserve, "reserve", 0, "Capacity to reserve before pushing")
	rootCmd.AddCommand(cmd)
}

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Show how capacity grows while pushing",
		Long: `The grow command pushes 0..n-1 onto an empty vector and prints the
size and capacity after every reallocation, followed by allocator statistics.

Example:
  vecctl grow -n 100
  vecctl grow -n 100 --reserve 100
  vecctl grow -n 1000 --allocator pool --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow(args)
		},
	}
	return cmd
}

// growStep records a capacity change.
type growStep struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

func runGrow(_ []string) error {
	st, err := newStorage[int]()
	if err != nil {
		return err
	}

	v := vector.New(st.opts)
	if err := v.Reserve(growReserve); err != nil {
		return err
	}

	var steps []growStep
	prevCap := v.Cap()
	for i := range growN {
		if err := v.PushBack(i); err != nil {
			return err
		}
		if v.Cap() != prevCap {
			steps = append(steps, growStep{Size: v.Size(), Capacity: v.Cap()})
			prevCap = v.Cap()
		}
	}
	final := growStep{Size: v.Size(), Capacity: v.Cap()}
	v.Release()
	report := st.report()
	logger.Info("grow done", "size", final.Size, "cap", final.Capacity, "reallocations", len(steps))

	if jsonOut {
		return printJSON(struct {
			Steps  []growStep  `json:"steps"`
			Final  growStep    `json:"final"`
			Report allocReport `json:"report"`
		}{steps, final, report})
	}

	for _, s := range steps {
		printInfo("size=%-6d cap=%d\n", s.Size, s.Capacity)
	}
	printInfo("final: size=%d cap=%d reallocations=%d\n", final.Size, final.Capacity, len(steps))
	printReport(report)
	return nil
}
