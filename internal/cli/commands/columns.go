package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewColumnsCommand creates the columns command.
func NewColumnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "columns TABLE",
		Short: "Show the columns of a table",
		Long: `Show a table's columns with their portable types, engine type names,
nullability, and whether each column is a partition key.`,
		Example: `  # Describe a table in the connection's default schema
  prestoql columns orders

  # Describe a table in another schema as markdown
  prestoql columns orders --schema sales --output md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			cols, err := cmdCtx.Adapter.Columns(cmd.Context(), args[0], schemaArg(cmd, cmdCtx.Cfg))
			if err != nil {
				return fmt.Errorf("failed to describe table %s: %w", args[0], err)
			}

			header := []string{"column", "type", "engine_type", "nullable", "partition_key"}
			results := make([]map[string]any, 0, len(cols))
			for _, c := range cols {
				results = append(results, map[string]any{
					"column":        c.Name,
					"type":          c.Type.String(),
					"engine_type":   c.TypeName,
					"nullable":      c.Nullable,
					"partition_key": c.PartitionKey,
				})
			}
			return renderRecords(cmd.OutOrStdout(), header, results,
				outputFormat(cmd, cmdCtx.Cfg))
		},
	}
}
