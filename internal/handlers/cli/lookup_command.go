package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbradf/epithet/internal/core/ports"
	"github.com/dbradf/epithet/internal/handlers/ui"
)

// NewLookupCommand creates the 'lookup' subcommand.
func NewLookupCommand(resolver ports.AliasResolver) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <alias> [args...]",
		Short: "Print the command an alias resolves to, without running it.",
		Long: `Resolves an alias exactly the way invocation would, including sub-alias
dispatch on the first argument, and prints the selected command template.
Expansions and placeholders are left as written and nothing is executed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookupCmd(cmd, args, resolver)
		},
	}

	// The arguments of a lookup are alias arguments, not flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runLookupCmd contains the core logic for the 'lookup' command.
func runLookupCmd(_ *cobra.Command, args []string, resolver ports.AliasResolver) error {
	resolution, err := resolver.Resolve(args[0], args[1:])
	if err != nil {
		return fmt.Errorf("could not look up alias: %w", err)
	}

	if resolution.Exec == nil {
		fmt.Println(ui.DetailColor("(no command)"))
		return nil
	}

	fmt.Println(ui.AliasCmdColor(resolution.Exec.String()))
	return nil
}
