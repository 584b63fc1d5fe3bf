package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewExistsCommand creates the exists command.
func NewExistsCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "exists TABLE",
		Short: "Check whether a table exists",
		Long: `Check whether a table exists in a schema.

Prints true or false. With --quiet nothing is printed and only the
exit code reports the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := cmdCtx.Adapter.HasTable(cmd.Context(), args[0], schemaArg(cmd, cmdCtx.Cfg))
			if err != nil {
				return fmt.Errorf("failed to check table %s: %w", args[0], err)
			}

			if !quiet {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)
			}
			if !ok {
				return ErrTableAbsent
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output, report via exit code only")
	return cmd
}

// ErrTableAbsent drives the nonzero exit code when the checked table does
// not exist. It is not a failure; callers should not print it as one.
var ErrTableAbsent = errors.New("table does not exist")
