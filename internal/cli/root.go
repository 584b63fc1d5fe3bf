// Package cli provides the command-line interface for prestoql.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/prestoql/internal/cli/commands"
	"github.com/leapstack-labs/prestoql/internal/cli/config"
)

var (
	cfgFile    string
	targetFlag string
	cfg        *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prestoql",
		Short: "prestoql - Presto introspection and query tool",
		Long: `prestoql connects to a Presto coordinator and exposes its catalogs
for introspection and ad hoc queries: list tables, describe columns and
partition keys, and run SQL from the command line.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			// Load configuration with optional target override and CLI flags
			var err error
			cfg, err = config.LoadConfigWithTarget(cfgFile, targetFlag, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			// Build the logger and store it in context for commands
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			ctx := context.WithValue(cmd.Context(), config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			// Print config file used (if verbose)
			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
				if targetFlag != "" {
					fmt.Fprintf(os.Stderr, "Using target: %s\n", targetFlag)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./prestoql.yaml)")
	rootCmd.PersistentFlags().StringVarP(&targetFlag, "target", "t", "", "Target environment to use (e.g., dev, staging, prod)")
	rootCmd.PersistentFlags().String("host", "", "Coordinator host")
	rootCmd.PersistentFlags().Int("port", 0, "Coordinator port")
	rootCmd.PersistentFlags().String("user", "", "User to run queries as")
	rootCmd.PersistentFlags().String("catalog", "", "Catalog to use")
	rootCmd.PersistentFlags().String("schema", "", "Schema to use")
	rootCmd.PersistentFlags().String("url", "", "Connection URL (overrides host/port/user/catalog/schema)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|markdown|json|csv)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "markdown", "json", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for target flag
	_ = rootCmd.RegisterFlagCompletionFunc("target", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"dev", "staging", "prod"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(commands.NewColumnsCommand())
	rootCmd.AddCommand(commands.NewIndexesCommand())
	rootCmd.AddCommand(commands.NewExistsCommand())
	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A missing table from `exists` is a result, not a failure; it
		// only needs the nonzero exit code.
		if !errors.Is(err, commands.ErrTableAbsent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// GetConfig returns the currently loaded configuration.
func GetConfig() *config.Config {
	if cfg != nil {
		return cfg
	}
	return &config.Config{
		Environment:  config.DefaultEnv,
		OutputFormat: config.DefaultOutput,
	}
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for prestoql.

To load completions:

Bash:
  $ source <(prestoql completion bash)

Zsh:
  $ prestoql completion zsh > "${fpath[1]}/_prestoql"

Fish:
  $ prestoql completion fish | source

PowerShell:
  PS> prestoql completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
