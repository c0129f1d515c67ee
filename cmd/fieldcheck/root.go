package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

// errInvalidValue signals a completed validation whose value did not pass.
var errInvalidValue = errors.New("value is invalid")

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldcheck",
		Short:         "Validate form field values against named formats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newValidateCmd(),
		newTypesCmd(),
		newServeCmd(),
	)
	return root
}

// run executes the CLI and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitValid
	case errors.Is(err, errInvalidValue):
		return exitInvalid
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
}
