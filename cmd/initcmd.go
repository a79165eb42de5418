package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/connascencechecker/connascence-checker/internal/config"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to .connascence.yaml in the given
directory (current directory when omitted), with every detection
threshold spelled out so it can be tuned per project.

Examples:
  connascence-checker init                 # Write .connascence.yaml here
  connascence-checker init /path/to/repo   # Write it in a specific directory
  connascence-checker init --force         # Overwrite an existing file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}

	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", targetPath, err)
	}

	configPath := filepath.Join(absPath, ".connascence.yaml")
	if _, err := os.Stat(configPath); err == nil && !forceInit {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	fmt.Printf("✅ Wrote default configuration to %s\n", configPath)
	return nil
}
