package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vectorkit/vector"
)

var (
	eraseAt    int
	eraseCount int
)

func init() {
	cmd := newEraseCmd()
	cmd.Flags().IntVar(&eraseAt, "at", 0, "Index of the first element to erase")
	cmd.Flags().IntVar(&eraseCount, "count", 1, "Number of elements to erase")
	rootCmd.AddCommand(cmd)
}

func newEraseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "erase <ints...>",
		Short: "Erase elements from a vector",
		Long: `The erase command builds a vector from the arguments and removes
--count elements starting at index --at.

Example:
  vecctl erase --at 1 10 20 30
  vecctl erase --at 0 --count 2 1 2 3 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runErase(args)
		},
	}
	return cmd
}

func runErase(args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	st, err := newStorage[int]()
	if err != nil {
		return err
	}

	v, err := vector.FromSlice(values, st.opts)
	if err != nil {
		return err
	}
	defer v.Release()

	if eraseCount == 1 {
		_, err = v.Erase(v.IterAt(eraseAt))
	} else {
		_, err = v.EraseRange(v.IterAt(eraseAt), v.IterAt(eraseAt+eraseCount))
	}
	if err != nil {
		return fmt.Errorf("erase [%d, %d): %w", eraseAt, eraseAt+eraseCount, err)
	}
	return printVector(v)
}
