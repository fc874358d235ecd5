package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hatchsite/hatch/internal/catalog"
	"github.com/hatchsite/hatch/internal/config"
)

var buildsLimit int

var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "List recent generated sites from the local catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		path := config.GetString("catalog.path")
		if _, err := os.Stat(path); err != nil {
			fmt.Println("No builds recorded yet.")
			return nil
		}

		cat, err := catalog.Open(path)
		if err != nil {
			return err
		}
		builds, err := cat.Recent(buildsLimit)
		if err != nil {
			return err
		}

		for _, b := range builds {
			fmt.Printf("%-4d %-24s %-12s %-12s chaos %.2f  %s\n",
				b.ID, b.BusinessName, b.Industry, b.VibeID, b.Chaos, b.OutputPath)
		}
		return nil
	},
}

func init() {
	buildsCmd.Flags().IntVarP(&buildsLimit, "limit", "n", 20, "number of builds to list")
	rootCmd.AddCommand(buildsCmd)
}
