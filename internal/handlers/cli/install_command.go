package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbradf/epithet/internal/core/ports"
	"github.com/dbradf/epithet/internal/handlers/ui"
)

// NewInstallCommand creates the 'install' subcommand.
func NewInstallCommand(installationService ports.InstallationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Create one symlink per alias so aliases run by name.",
		Long: `Creates a symlink named after every configured alias in $HOME/.local/epithet/bin,
each pointing at the epithet binary. With that directory on your PATH, every
alias becomes directly invocable. Existing links are left alone unless
--force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstallCmd(cmd, args, installationService)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Replace alias links that already exist.")

	return cmd
}

// runInstallCmd contains the core logic for the 'install' command.
func runInstallCmd(
	cmd *cobra.Command,
	_ []string,
	installationService ports.InstallationService,
) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	report, err := installationService.Install(force)
	if err != nil {
		return fmt.Errorf("could not install aliases: %w", err)
	}

	if report.BinDirCreated {
		fmt.Println(ui.InfoColor(fmt.Sprintf("Created alias directory %s", report.BinDir)))
	}

	if len(report.Links) == 0 {
		fmt.Println(ui.WarningColor("No aliases configured, nothing to install."))
		return nil
	}

	fmt.Println(ui.HeaderColor(fmt.Sprintf("Installed aliases in %s:", report.BinDir)))
	for _, link := range report.Links {
		switch link.Outcome {
		case ports.LinkCreated:
			fmt.Printf("  %s %s -> %s\n", ui.SuccessColor("created"), ui.AliasNameColor(link.Name), ui.DetailColor(report.Binary))
		case ports.LinkReplaced:
			fmt.Printf("  %s %s -> %s\n", ui.WarningColor("replaced"), ui.AliasNameColor(link.Name), ui.DetailColor(report.Binary))
		case ports.LinkSkipped:
			fmt.Printf("  %s %s %s\n", ui.DetailColor("skipped"), ui.AliasNameColor(link.Name), ui.DetailColor("(already exists, use --force to replace)"))
		}
	}
	fmt.Println(ui.DetailColor(fmt.Sprintf("Make sure the directory is on your PATH: export PATH=$PATH:%s", report.BinDir)))

	return nil
}
