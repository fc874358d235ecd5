// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hatchsite/hatch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "hatch",
	Short: "Hatch - generative website builder for local businesses",
	Long: `Hatch turns a small content file describing a business into a complete,
self-contained website: layout, color palette and section styling are
generated by a constraint engine instead of hand-picked templates.

Each industry maps to an aesthetic vibe that keeps the random style
choices coherent; the same business can hatch very different sites.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig initializes the configuration system
func initConfig() error {
	configPath := os.Getenv("HATCH_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = home + "/.hatch/config.yaml"
	}

	return config.InitConfig(configPath)
}
