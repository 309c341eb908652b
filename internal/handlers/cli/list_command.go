package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dbradf/epithet/internal/core/domain/alias"
	"github.com/dbradf/epithet/internal/core/domain/execution"
	"github.com/dbradf/epithet/internal/handlers/ui"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(config *alias.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured aliases.",
		Long:  `Displays every alias from the configuration file, with its command and sub-aliases.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, config)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(_ *cobra.Command, _ []string, config *alias.Config) error {
	if len(config.Aliases) == 0 {
		fmt.Println(ui.InfoColor("No aliases configured."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Configured aliases:"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Alias", "Command", "Sub-Aliases"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range config.Names() {
		entry := config.Aliases[name]
		table.Append([]string{name, renderExecution(entry.Exec), renderSubAliases(entry.SubAliases)})
	}
	table.Render()

	if len(config.GlobalExpansions) > 0 {
		fmt.Println(ui.HeaderColor("Global expansions:"))
		for _, key := range sortedKeys(config.GlobalExpansions) {
			fmt.Printf("  %s = %s\n", ui.AliasNameColor("@"+key), ui.AliasCmdColor(config.GlobalExpansions[key]))
		}
	}

	return nil
}

func renderExecution(exec execution.Execution) string {
	if exec == nil {
		return ""
	}
	return exec.String()
}

func renderSubAliases(subs []alias.SubAlias) string {
	names := make([]string, 0, len(subs))
	for _, sub := range subs {
		names = append(names, sub.Name)
	}
	return strings.Join(names, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
