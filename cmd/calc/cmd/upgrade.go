package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/update"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade calc to the latest version",
	Long:  `Upgrade calc to the latest version by downloading and installing the newest release.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Current version: %s\n", Version)

		if update.DetectInstallMethod() == update.InstallHomebrew {
			fmt.Fprintln(out, "\ncalc was installed via Homebrew.")
			fmt.Fprintln(out, "Run: brew upgrade calc")
			return nil
		}

		fmt.Fprintln(out, "Checking for updates...")

		ctx := cmd.Context()
		release, hasUpdate, err := update.CheckForUpdate(ctx, Version)
		if errors.Is(err, update.ErrDevBuild) {
			fmt.Fprintln(out, "Development build, nothing to upgrade.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !hasUpdate {
			fmt.Fprintln(out, "Already at latest version.")
			return nil
		}

		fmt.Fprintf(out, "Updating to %s...\n", release.Version)

		if err := update.Update(ctx, Version); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		fmt.Fprintf(out, "Successfully updated to %s\n", release.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
