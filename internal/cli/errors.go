package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/listkeeper/internal/controller"
)

// Exit codes: 0 ok, 1 runtime error, 2 usage or validation error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func errUsage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err: err}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return errUsage(fn(cmd, args))
	}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		uerr usageError
		verr *controller.ValidationError
		ierr *controller.IndexError
	)
	switch {
	case errors.As(err, &uerr), errors.As(err, &verr), errors.As(err, &ierr):
		return exitUsage
	}
	return exitError
}
