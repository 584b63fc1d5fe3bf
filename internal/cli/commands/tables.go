package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List tables in a schema",
		Long: `List the tables visible in a schema via SHOW TABLES.

With no --schema, the connection's default schema is listed.`,
		Example: `  # List tables in the connection's default schema
  prestoql tables

  # List tables in a specific schema as JSON
  prestoql tables --schema sales --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			names, err := cmdCtx.Adapter.TableNames(cmd.Context(), schemaArg(cmd, cmdCtx.Cfg))
			if err != nil {
				return fmt.Errorf("failed to list tables: %w", err)
			}

			results := make([]map[string]any, 0, len(names))
			for _, name := range names {
				results = append(results, map[string]any{"table": name})
			}
			return renderRecords(cmd.OutOrStdout(), []string{"table"}, results,
				outputFormat(cmd, cmdCtx.Cfg))
		},
	}
}
