// Command tinyfmt renders a C99 printf format string against command line
// arguments.
//
//	tinyfmt -n "%-8s %05.1f%%" ada 99.5
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Frugality/tinyformat"
)

// RootOptions holds flags for the root command.
type RootOptions struct {
	Newline bool
}

// NewRootCommand creates the tinyfmt root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tinyfmt FORMAT [ARG...]",
		Short: "Render a C99 printf format string",
		Long: "tinyfmt interprets FORMAT with C99 printf semantics and writes the\n" +
			"result to standard output. Each ARG is read as an integer, a float,\n" +
			"a bool, or a string, in that order.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]any, len(args)-1)
			for i, raw := range args[1:] {
				values[i] = parseValue(raw)
			}
			if err := tinyformat.Fprintf(cmd.OutOrStdout(), args[0], values...); err != nil {
				return err
			}
			if opts.Newline {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Newline, "newline", "n", false, "append a trailing newline")
	return cmd
}

// parseValue interprets raw as an int, float, bool, or string, in that
// order.
func parseValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
