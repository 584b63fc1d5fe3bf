package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query SQL",
		Short: "Run a SQL statement and print the result",
		Example: `  # Run a query against the configured target
  prestoql query "SELECT * FROM orders LIMIT 10"

  # Emit the result as CSV
  prestoql query "SELECT region, count(*) FROM orders GROUP BY 1" --output csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := cmdCtx.Adapter.Query(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}
			defer func() { _ = rows.Close() }()

			return renderResults(cmd.OutOrStdout(), rows.Rows, outputFormat(cmd, cmdCtx.Cfg))
		},
	}
}
