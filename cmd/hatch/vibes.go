package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hatchsite/hatch/internal/genes"
)

var vibesCmd = &cobra.Command{
	Use:   "vibes",
	Short: "List available vibes and their constraints",
	Run: func(cmd *cobra.Command, args []string) {
		for _, v := range genes.ListVibes() {
			fmt.Printf("%-12s chaos %.2f\n", v.ID, v.Chaos)
			for _, cat := range genes.Categories() {
				if subset, ok := v.Allowed[cat]; ok {
					fmt.Printf("    %-18s %v\n", cat, subset)
				}
			}
		}
	},
}

var genesCmd = &cobra.Command{
	Use:   "genes",
	Short: "List gene categories and their valid codes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, cat := range genes.Categories() {
			fmt.Printf("%-18s %v\n", cat, genes.AllowedCodes(cat))
		}
	},
}

func init() {
	rootCmd.AddCommand(vibesCmd)
	rootCmd.AddCommand(genesCmd)
}
