// Package cmd implements the flusty command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wxxedu/flusty/logger"
)

var (
	jsonOutput bool
	verbose    bool
)

// RootCmd is the flusty root command.
var RootCmd = &cobra.Command{
	Use:   "flusty",
	Short: "Generate Dart ffi bindings from annotated Rust declarations",
	Long: `flusty scans a Rust module tree for declarations carrying a marker
attribute and generates a Dart binding file for them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(jsonOutput, verbose)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit logs as JSON")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(initCmd)
}
