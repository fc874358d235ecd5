// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hatchsite/hatch/internal/assemble"
	"github.com/hatchsite/hatch/internal/catalog"
	"github.com/hatchsite/hatch/internal/colors"
	"github.com/hatchsite/hatch/internal/config"
	"github.com/hatchsite/hatch/internal/content"
	"github.com/hatchsite/hatch/internal/registry"
	"github.com/hatchsite/hatch/internal/sections"
)

var (
	buildContentPath string
	buildOutputPath  string
	buildVibe        string
	buildMood        string
	buildSeedColor   string
	buildChaos       float64
	buildSeed        int64
	buildNoFonts     bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a website from a content file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()

		sc, err := content.LoadFile(buildContentPath)
		if err != nil {
			return err
		}

		res, err := runBuild(sc, logger)
		if err != nil {
			return err
		}

		out := buildOutputPath
		if out == "" {
			name := strings.ToLower(strings.ReplaceAll(sc.BusinessName, " ", "-"))
			out = filepath.Join(config.GetString("output.dir"), name+".html")
		}
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(out, []byte(res.Document), 0644); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}

		if config.GetBool("catalog.enabled") {
			if err := recordBuild(sc, res, out); err != nil {
				logger.Warn("build not recorded in catalog", zap.Error(err))
			}
		}

		fmt.Printf("Wrote %s (%d bytes, vibe %s)\n", out, len(res.Document), res.VibeID)
		return nil
	},
}

// runBuild assembles one document with the flag-level overrides
// applied. Shared by build and preview.
func runBuild(sc *content.SiteContent, logger *zap.Logger) (*assemble.Result, error) {
	reg := registry.New(logger)
	sections.RegisterBuiltins(reg)

	seed := buildSeed
	if seed == 0 {
		seed = int64(config.GetInt("generate.seed"))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	builder := assemble.New(reg, logger, rand.New(rand.NewSource(seed)))

	opts := assemble.BuildOptions{
		VibeID:       firstNonEmpty(buildVibe, config.GetString("generate.vibe")),
		Mood:         colors.Mood(firstNonEmpty(buildMood, config.GetString("generate.mood"))),
		SeedColor:    buildSeedColor,
		IncludeFonts: !buildNoFonts && config.GetBool("output.include_fonts"),
	}
	if buildChaos >= 0 {
		opts.Chaos = &buildChaos
	}

	return builder.BuildWebsite(sc, opts)
}

func recordBuild(sc *content.SiteContent, res *assemble.Result, out string) error {
	path := config.GetString("catalog.path")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	cat, err := catalog.Open(path)
	if err != nil {
		return err
	}
	_, err = cat.Record(sc.BusinessName, sc.Industry, res.VibeID, res.DNA, res.Palette, out)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	buildCmd.Flags().StringVarP(&buildContentPath, "content", "c", "content.yaml", "content file (YAML or JSON)")
	buildCmd.Flags().StringVarP(&buildOutputPath, "output", "o", "", "output HTML path")
	buildCmd.Flags().StringVar(&buildVibe, "vibe", "", "vibe override (trustworthy, executive, maverick, minimal, warm, bold)")
	buildCmd.Flags().StringVar(&buildMood, "mood", "", "palette mood (vibrant, muted, monochrome)")
	buildCmd.Flags().StringVar(&buildSeedColor, "seed-color", "", "seed color override (#rrggbb)")
	buildCmd.Flags().Float64Var(&buildChaos, "chaos", -1, "chaos override in [0,1]")
	buildCmd.Flags().Int64Var(&buildSeed, "seed", 0, "random seed for gene generation (0 = time-based)")
	buildCmd.Flags().BoolVar(&buildNoFonts, "no-fonts", false, "skip web font loading hints")
	rootCmd.AddCommand(buildCmd)
}
