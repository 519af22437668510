package cmd

import (
	"srcfuse/pkg/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command. Running it without a subcommand performs
// the bundle with the built-in configuration; the two inputs (root
// directory and supplemental file list) are deliberately not flags.
var RootCmd = &cobra.Command{
	Use:   "srcfuse",
	Short: "SrcFuse is a CLI tool for fusing a source tree into one text bundle",
	Long: `SrcFuse walks the source directory and a fixed list of extra files,
then concatenates every discovered file into a single delimited text bundle,
designed for workflows like LLM input preparation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute wires the logger into the root command and runs it.
func Execute(logger *zap.Logger) error {
	RootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return bundle.Execute(logger)
	}
	return RootCmd.Execute()
}
