package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultConfig(t *testing.T) {
	// Test loading default config when no file exists
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.Parameters.MaxParameters != 5 {
		t.Errorf("Expected default max parameters to be 5, got %d", cfg.Parameters.MaxParameters)
	}

	if cfg.GodObjects.MaxMethods != 20 {
		t.Errorf("Expected default max methods to be 20, got %d", cfg.GodObjects.MaxMethods)
	}

	if cfg.MagicLiterals.MagnitudeThreshold != 1 {
		t.Errorf("Expected default magnitude threshold to be 1, got %v", cfg.MagicLiterals.MagnitudeThreshold)
	}

	if !cfg.MagicLiterals.ExcludeConstDecls {
		t.Error("Default config should exclude const declarations from magic literal detection")
	}

	if cfg.Duplication.MinNodes == 0 {
		t.Error("Default config should have a duplication minimum node count")
	}

	if len(cfg.Scanner.ExcludeDirs) == 0 {
		t.Error("Default config should have excluded directories")
	}
}

func TestLoad_CustomConfig(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer func(path string) {
		err := os.RemoveAll(path)
		if err != nil {
			t.Fatalf("Failed to clean up temp directory %s: %v", path, err)
		}
	}(tempDir)

	configContent := `
magic_literals:
  magnitude_threshold: 10
  exclude_const_decls: false
  exclude_all_caps_bindings: true

parameters:
  max_parameters: 3

god_objects:
  max_methods: 10

duplication:
  min_nodes: 20

scanner:
  exclude_dirs:
    - "vendor"
    - "generated"
`

	configPath := filepath.Join(tempDir, ".connascence.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load custom config: %v", err)
	}

	if cfg.MagicLiterals.MagnitudeThreshold != 10 {
		t.Errorf("Expected magnitude threshold to be 10, got %v", cfg.MagicLiterals.MagnitudeThreshold)
	}

	if cfg.MagicLiterals.ExcludeConstDecls {
		t.Error("Expected exclude_const_decls to be false")
	}

	if cfg.Parameters.MaxParameters != 3 {
		t.Errorf("Expected max parameters to be 3, got %d", cfg.Parameters.MaxParameters)
	}

	if cfg.GodObjects.MaxMethods != 10 {
		t.Errorf("Expected max methods to be 10, got %d", cfg.GodObjects.MaxMethods)
	}

	if cfg.Duplication.MinNodes != 20 {
		t.Errorf("Expected duplication min nodes to be 20, got %d", cfg.Duplication.MinNodes)
	}

	if len(cfg.Scanner.ExcludeDirs) != 2 {
		t.Errorf("Expected 2 excluded directories, got %d", len(cfg.Scanner.ExcludeDirs))
	}
}

func getDefaultConfig() *Config {
	return DefaultConfig()
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid default config",
			config:  getDefaultConfig(),
			wantErr: false,
		},
		{
			name: "invalid max parameters",
			config: &Config{
				Parameters:    ParameterConfig{MaxParameters: 0},
				MagicLiterals: getDefaultConfig().MagicLiterals,
				GodObjects:    getDefaultConfig().GodObjects,
				Duplication:   getDefaultConfig().Duplication,
				Scanner:       getDefaultConfig().Scanner,
			},
			wantErr: true,
		},
		{
			name: "invalid max methods",
			config: &Config{
				GodObjects:    GodObjectConfig{MaxMethods: -1},
				MagicLiterals: getDefaultConfig().MagicLiterals,
				Parameters:    getDefaultConfig().Parameters,
				Duplication:   getDefaultConfig().Duplication,
				Scanner:       getDefaultConfig().Scanner,
			},
			wantErr: true,
		},
		{
			name: "invalid magnitude threshold",
			config: &Config{
				MagicLiterals: MagicLiteralConfig{MagnitudeThreshold: -2},
				Parameters:    getDefaultConfig().Parameters,
				GodObjects:    getDefaultConfig().GodObjects,
				Duplication:   getDefaultConfig().Duplication,
				Scanner:       getDefaultConfig().Scanner,
			},
			wantErr: true,
		},
		{
			name: "invalid duplication min nodes",
			config: &Config{
				Duplication:   DuplicationConfig{MinNodes: 0},
				MagicLiterals: getDefaultConfig().MagicLiterals,
				Parameters:    getDefaultConfig().Parameters,
				GodObjects:    getDefaultConfig().GodObjects,
				Scanner:       getDefaultConfig().Scanner,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveAndReload(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_save_test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer func(path string) {
		err := os.RemoveAll(path)
		if err != nil {
			t.Fatalf("Failed to clean up temp directory %s: %v", path, err)
		}
	}(tempDir)

	original := DefaultConfig()
	original.Parameters.MaxParameters = 7

	configPath := filepath.Join(tempDir, ".connascence.yaml")
	if err := original.Save(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to reload saved config: %v", err)
	}

	if reloaded.Parameters.MaxParameters != 7 {
		t.Errorf("Expected reloaded max parameters to be 7, got %d", reloaded.Parameters.MaxParameters)
	}

	if reloaded.GodObjects.MaxMethods != original.GodObjects.MaxMethods {
		t.Errorf("Expected reloaded max methods to be %d, got %d",
			original.GodObjects.MaxMethods, reloaded.GodObjects.MaxMethods)
	}
}
