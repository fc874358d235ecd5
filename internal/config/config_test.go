package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	if value := GetString("output.dir"); value != "./out" {
		t.Errorf("Expected default output.dir to be ./out, got %s", value)
	}
	if port := GetInt("preview.port"); port != 8317 {
		t.Errorf("Expected default preview.port to be 8317, got %d", port)
	}
	if !GetBool("catalog.enabled") {
		t.Error("Expected catalog.enabled to default to true")
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("preview.port", 9000)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if port := GetInt("preview.port"); port != 9000 {
		t.Errorf("Expected preview.port to be 9000, got %d", port)
	}
}
