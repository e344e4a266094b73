package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/vectorkit/stack"
	"github.com/joshuapare/vectorkit/vector"
)

func init() {
	rootCmd.AddCommand(newStackCmd())
}

func newStackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack <ints...>",
		Short: "Push values onto a stack and pop them all",
		Long: `The stack command builds a vector from the arguments, wraps it in a
stack (the last argument is the top) and pops until the stack is empty,
printing each popped value.

Example:
  vecctl stack 1 2 3 4 5
  vecctl stack 1 2 3 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStack(args)
		},
	}
	return cmd
}

func runStack(args []string) error {
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
	s := stack.FromVector(v)
	defer s.Release()

	popped := make([]int, 0, s.Size())
	for !s.Empty() {
		top, err := s.Top()
		if err != nil {
			return err
		}
		printVerbose("pop %d (size %d)\n", top, s.Size())
		popped = append(popped, top)
		s.Pop()
	}

	if jsonOut {
		return printJSON(struct {
			Popped []int `json:"popped"`
		}{popped})
	}
	printInfo("%s\n", joinInts(popped))
	return nil
}
