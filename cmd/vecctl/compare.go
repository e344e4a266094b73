package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/vectorkit/order"
	"github.com/joshuapare/vectorkit/vector"
)

var (
	compareCollate    string
	compareIgnoreCase bool
	compareNumeric    bool
)

func init() {
	cmd := newCompareCmd()
	cmd.Flags().
		StringVar(&compareCollate, "collate", "", "Compare as strings under this language's collation (e.g. en, sv)")
	cmd.Flags().BoolVar(&compareIgnoreCase, "ignore-case", false, "Ignore case (with --collate)")
	cmd.Flags().BoolVar(&compareNumeric, "numeric", false, "Order digit runs by value (with --collate)")
	rootCmd.AddCommand(cmd)
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two comma-separated lists lexicographically",
		Long: `The compare command builds a vector from each comma-separated list
and prints "<", "==" or ">". Lists of integers compare numerically; anything
else compares as strings, by byte value or, with --collate, by the rules of
the given language.

Example:
  vecctl compare 1,2,3 1,2,4
  vecctl compare --collate sv ö z`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args)
		},
	}
	return cmd
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func runCompare(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}
	left, right := splitList(args[0]), splitList(args[1])

	var (
		result int
		mode   string
		err    error
	)
	switch {
	case compareCollate != "":
		mode = "collate:" + compareCollate
		result, err = compareCollated(left, right)
	default:
		li, lerr := parseInts(left)
		ri, rerr := parseInts(right)
		if lerr == nil && rerr == nil {
			mode = "int"
			result, err = compareWith(li, ri, vector.Compare[int])
		} else {
			mode = "bytes"
			result, err = compareWith(left, right, vector.Compare[string])
		}
	}
	if err != nil {
		return err
	}

	symbol := "=="
	switch {
	case result < 0:
		symbol = "<"
	case result > 0:
		symbol = ">"
	}
	printVerbose("mode: %s\n", mode)
	if jsonOut {
		return printJSON(struct {
			Result  string `json:"result"`
			Compare int    `json:"compare"`
			Mode    string `json:"mode"`
		}{symbol, result, mode})
	}
	printInfo("%s\n", symbol)
	return nil
}

func compareCollated(left, right []string) (int, error) {
	c, err := order.NewCollator(compareCollate, order.Options{
		IgnoreCase: compareIgnoreCase,
		Numeric:    compareNumeric,
	})
	if err != nil {
		return 0, err
	}
	printVerbose("collation: %s\n", c.Tag())
	return compareWith(left, right, func(a, b *vector.Vector[string]) int {
		return vector.CompareFunc(a, b, c.Compare)
	})
}

// compareWith builds both vectors on the selected allocator and compares them.
func compareWith[T any](left, right []T, compare func(a, b *vector.Vector[T]) int) (int, error) {
	st, err := newStorage[T]()
	if err != nil {
		return 0, err
	}
	a, err := vector.FromSlice(left, st.opts)
	if err != nil {
		return 0, err
	}
	defer a.Release()
	b, err := vector.FromSlice(right, st.opts)
	if err != nil {
		return 0, err
	}
	defer b.Release()
	return compare(a, b), nil
}
