package cmd

import (
	"errors"
	"fmt"

	"github.com/pengelbrecht/mypackage/internal/update"
	"github.com/spf13/cobra"
)

func newUpgradeCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade mypackage to the latest version",
		Long:  `Upgrade mypackage to the latest version by downloading and installing the newest release.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current version: %s\n", Version)

			method := update.DetectInstallMethod()
			opts.logger.Debug("install method detected", "method", method.String())
			switch method {
			case update.InstallHomebrew:
				fmt.Fprintln(out, "\nmypackage was installed via Homebrew.")
				fmt.Fprintln(out, "Run: brew upgrade mypackage")
				return nil
			case update.InstallGo:
				fmt.Fprintln(out, "\nmypackage was installed with go install.")
				fmt.Fprintf(out, "Run: go install github.com/%s/cmd/mypackage@latest\n", update.Repository)
				return nil
			}

			fmt.Fprintln(out, "Checking for updates...")

			release, hasUpdate, err := update.CheckForUpdate(cmd.Context(), Version)
			if err != nil {
				if errors.Is(err, update.ErrDevelopmentBuild) {
					return usageError("cannot upgrade", err)
				}
				return failure("failed to check for updates", err)
			}
			if !hasUpdate {
				fmt.Fprintln(out, "Already at latest version.")
				return nil
			}

			fmt.Fprintf(out, "Updating to %s...\n", release.Version)

			installed, err := update.Update(cmd.Context(), Version)
			if err != nil {
				return failure("update failed", err)
			}
			if installed == nil {
				fmt.Fprintln(out, "Already at latest version.")
				return nil
			}

			fmt.Fprintf(out, "Successfully updated to %s\n", installed.Version)
			return nil
		},
	}
}
