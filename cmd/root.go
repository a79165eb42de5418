package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version can be set at build time using ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "connascence-checker",
	Short: "A CLI tool for detecting connascence violations in Go source code",
	Long: `Connascence Checker walks a Go source tree and reports structural
code smells as connascence violations: magic literals, excessive
positional parameters, god objects, duplicated algorithms, and files
that fail to parse.

Every finding is a structured record with kind, severity, location,
and a suggested remediation.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Connascence Checker - Use 'connascence-checker help' for available commands")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is .connascence.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "table", "output format (table, json, markdown)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("connascence-checker version %s\n", Version)
		},
	})
}
