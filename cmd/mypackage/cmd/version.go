package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mypackage",
		Long:  `Print the version number of mypackage.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{Name: "my-package", Version: Version}
			return writeOutput(cmd.OutOrStdout(), opts.Format, info, fmt.Sprintf("my-package %s", Version))
		},
	}
}
