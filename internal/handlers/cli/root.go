package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dbradf/epithet/internal/core/domain/alias"
	"github.com/dbradf/epithet/internal/core/ports"
)

func NewRootCommand(
	version string,
	config *alias.Config,
	resolver ports.AliasResolver,
	executionService ports.AliasExecutionService,
	installationService ports.InstallationService,
	logger *log.Logger,
) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "epithet [alias] [args...]",
		Short: "epithet expands and runs user-defined command aliases.",
		Long: `epithet resolves named aliases from a declarative configuration file into
concrete commands, applying sub-alias dispatch, named @key expansions, and
positional {N} placeholders. Aliases run either through the primary command
(epithet <alias> [args...]) or by name through symlinks created by
'epithet install'.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && logger != nil {
				logger.SetLevel(log.DebugLevel)
			}
			if installationService == nil && cmd.Name() == "install" {
				return fmt.Errorf("installation service not initialized for command %s", cmd.Name())
			}
			if resolver == nil && cmd.Name() == "lookup" {
				return fmt.Errorf("alias resolver not initialized for command %s", cmd.Name())
			}
			if config == nil && cmd.Name() == "list" {
				return fmt.Errorf("configuration not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, executionService)
		},
	}

	// Alias arguments must reach the child untouched: stop flag parsing at
	// the first positional so 'epithet build --watch' does not eat --watch.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")

	rootCmd.AddCommand(NewInstallCommand(installationService))
	rootCmd.AddCommand(NewLookupCommand(resolver))
	rootCmd.AddCommand(NewListCommand(config))

	return rootCmd
}

// runRootCmd treats the first positional argument as an alias name and runs
// it, falling back to help when no alias was named.
func runRootCmd(cmd *cobra.Command, args []string, executionService ports.AliasExecutionService) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return RunAlias(executionService, args[0], args[1:])
}
