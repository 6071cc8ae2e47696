package root

import (
	"io"
	"os"

	"github.com/greet-cli/greet/cmd/greet/version"
	"github.com/greet-cli/greet/internal/greeter"
	"github.com/spf13/cobra"
)

const (
	exitCodeSuccess   = 0
	exitCodeWriteFail = 1
)

type greetExitError struct {
	code int
	err  error
}

func (e greetExitError) Error() string { return e.err.Error() }
func (e greetExitError) ExitCode() int { return e.code }
func (e greetExitError) Unwrap() error { return e.err }

// NewRootCmd creates the root command for greet.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "CLI: print a friendly greeting to standard output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return greet(os.Stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)

	return cmd
}

// greet runs the greeter against w and maps a write failure onto the
// exit-status contract.
func greet(w io.Writer) error {
	if err := greeter.Greet(w); err != nil {
		return greetExitError{code: exitCodeWriteFail, err: err}
	}
	return nil
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
