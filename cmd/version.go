// File: cmd/version.go
package cmd

import (
	"fmt"

	"srcfuse/pkg/version"

	"github.com/spf13/cobra"
)

// versionCmd prints the build information stamped into the binary.
// The --short flag reduces the output to the bare version number.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of SrcFuse",
	Long:  `Display version, commit, and build details for the srcfuse binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Println(v.Version)
			return nil
		}

		fmt.Println(v.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")

	RootCmd.AddCommand(versionCmd)
}
