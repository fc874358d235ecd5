// SPDX-License-Identifier: MIT
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// LoadFile reads a SiteContent description from a YAML or JSON file,
// chosen by extension, and sanitizes all free-text fields.
func LoadFile(path string) (*SiteContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var sc SiteContent
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse content JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse content YAML: %w", err)
		}
	}

	if sc.BusinessName == "" {
		return nil, fmt.Errorf("content file %s has no business_name", path)
	}

	Sanitize(&sc)
	return &sc, nil
}
