// SPDX-License-Identifier: MIT
package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hatchsite/hatch/internal/colors"
	"github.com/hatchsite/hatch/internal/genes"
)

// SiteBuild records one generated document: the inputs that produced
// it and where it was written. The engine itself persists nothing; the
// catalog belongs to the CLI layer around it.
type SiteBuild struct {
	ID           uint   `gorm:"primaryKey"`
	BusinessName string `gorm:"not null"`
	Industry     string
	VibeID       string
	Chaos        float64
	DNAJSON      string // gene combination, category -> code
	PaletteJSON  string
	OutputPath   string
	CreatedAt    time.Time
}

// Catalog is the local build-history store.
type Catalog struct {
	db *gorm.DB
}

// Open opens (and migrates) the sqlite catalog at path.
func Open(path string) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if err := db.AutoMigrate(&SiteBuild{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Record stores one build.
func (c *Catalog) Record(businessName, industry, vibeID string, dna genes.DNA, palette colors.Palette, outputPath string) (*SiteBuild, error) {
	dnaJSON, err := json.Marshal(dna.Codes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode DNA: %w", err)
	}
	paletteJSON, err := json.Marshal(palette)
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}

	build := &SiteBuild{
		BusinessName: businessName,
		Industry:     industry,
		VibeID:       vibeID,
		Chaos:        dna.Chaos,
		DNAJSON:      string(dnaJSON),
		PaletteJSON:  string(paletteJSON),
		OutputPath:   outputPath,
	}
	if err := c.db.Create(build).Error; err != nil {
		return nil, fmt.Errorf("failed to record build: %w", err)
	}
	return build, nil
}

// Recent returns the latest builds, newest first.
func (c *Catalog) Recent(limit int) ([]SiteBuild, error) {
	var builds []SiteBuild
	if err := c.db.Order("created_at DESC").Limit(limit).Find(&builds).Error; err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	return builds, nil
}

// DNA decodes the stored gene combination of a build, so a past build
// can be regenerated exactly.
func (b *SiteBuild) DNA() (genes.DNA, error) {
	codes := make(map[genes.Category]string)
	if err := json.Unmarshal([]byte(b.DNAJSON), &codes); err != nil {
		return genes.DNA{}, fmt.Errorf("failed to decode DNA: %w", err)
	}
	return genes.DNA{Codes: codes, Chaos: b.Chaos}, nil
}
