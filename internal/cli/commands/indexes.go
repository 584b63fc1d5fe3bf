package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewIndexesCommand creates the indexes command.
func NewIndexesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes TABLE",
		Short: "Show the indexes of a table",
		Long: `Show a table's indexes. Presto has no native indexes; partitioned
tables report a single synthetic index covering their partition keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			idxs, err := cmdCtx.Adapter.Indexes(cmd.Context(), args[0], schemaArg(cmd, cmdCtx.Cfg))
			if err != nil {
				return fmt.Errorf("failed to list indexes for %s: %w", args[0], err)
			}

			header := []string{"index", "columns", "unique"}
			results := make([]map[string]any, 0, len(idxs))
			for _, idx := range idxs {
				results = append(results, map[string]any{
					"index":   idx.Name,
					"columns": strings.Join(idx.ColumnNames, ", "),
					"unique":  idx.Unique,
				})
			}
			return renderRecords(cmd.OutOrStdout(), header, results,
				outputFormat(cmd, cmdCtx.Cfg))
		},
	}
}
