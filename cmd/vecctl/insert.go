package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vectorkit/vector"
)

var (
	insertAt    int
	insertValue int
	insertCount int
)

func init() {
	cmd := newInsertCmd()
	cmd.Flags().IntVar(&insertAt, "at", 0, "Index to insert before (0..size)")
	cmd.Flags().IntVar(&insertValue, "value", 0, "Value to insert")
	cmd.Flags().IntVar(&insertCount, "count", 1, "Number of copies to insert")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <ints...>",
		Short: "Insert copies of a value into a vector",
		Long: `The insert command builds a vector from the arguments and inserts
--count copies of --value before index --at. An index equal to the number of
arguments appends.

Example:
  vecctl insert --at 2 --value 9 10 20 30 40
  vecctl insert --at 0 --value 7 --count 3 1 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(args)
		},
	}
	return cmd
}

func runInsert(args []string) error {
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

	printVerbose("before: size=%d cap=%d\n", v.Size(), v.Cap())
	if _, err := v.InsertN(v.IterAt(insertAt), insertCount, insertValue); err != nil {
		return fmt.Errorf("insert at %d: %w", insertAt, err)
	}
	return printVector(v)
}
