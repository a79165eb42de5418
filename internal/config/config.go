package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	MagicLiterals MagicLiteralConfig `mapstructure:"magic_literals" yaml:"magic_literals"`
	Parameters    ParameterConfig    `mapstructure:"parameters" yaml:"parameters"`
	GodObjects    GodObjectConfig    `mapstructure:"god_objects" yaml:"god_objects"`
	Duplication   DuplicationConfig  `mapstructure:"duplication" yaml:"duplication"`
	Scanner       ScannerConfig      `mapstructure:"scanner" yaml:"scanner"`
}

type MagicLiteralConfig struct {
	// Literals whose absolute value is at or below the threshold are
	// treated as sentinels (0, 1, -1 by default) and never flagged.
	MagnitudeThreshold     float64 `mapstructure:"magnitude_threshold" yaml:"magnitude_threshold"`
	ExcludeConstDecls      bool    `mapstructure:"exclude_const_decls" yaml:"exclude_const_decls"`
	ExcludeAllCapsBindings bool    `mapstructure:"exclude_all_caps_bindings" yaml:"exclude_all_caps_bindings"`
}

type ParameterConfig struct {
	MaxParameters int `mapstructure:"max_parameters" yaml:"max_parameters"`
}

type GodObjectConfig struct {
	MaxMethods int `mapstructure:"max_methods" yaml:"max_methods"`
}

type DuplicationConfig struct {
	// Function bodies with fewer AST nodes than MinNodes are not
	// fingerprinted; trivial bodies collide structurally.
	MinNodes int `mapstructure:"min_nodes" yaml:"min_nodes"`
}

type ScannerConfig struct {
	ExcludeDirs []string `mapstructure:"exclude_dirs" yaml:"exclude_dirs"`
}

func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".connascence")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func DefaultConfig() *Config {
	return &Config{
		MagicLiterals: MagicLiteralConfig{
			MagnitudeThreshold:     1,
			ExcludeConstDecls:      true,
			ExcludeAllCapsBindings: true,
		},
		Parameters: ParameterConfig{
			MaxParameters: 5,
		},
		GodObjects: GodObjectConfig{
			MaxMethods: 20,
		},
		Duplication: DuplicationConfig{
			MinNodes: 8,
		},
		Scanner: ScannerConfig{
			ExcludeDirs: []string{".git", "vendor", "testdata", "node_modules"},
		},
	}
}

func (c *Config) Validate() error {
	if err := c.validateMagicLiterals(); err != nil {
		return err
	}
	if err := c.validateParameters(); err != nil {
		return err
	}
	if err := c.validateGodObjects(); err != nil {
		return err
	}
	return c.validateDuplication()
}

func (c *Config) validateMagicLiterals() error {
	if c.MagicLiterals.MagnitudeThreshold < 0 {
		return fmt.Errorf("magic_literals.magnitude_threshold must be non-negative")
	}
	return nil
}

func (c *Config) validateParameters() error {
	if c.Parameters.MaxParameters <= 0 {
		return fmt.Errorf("parameters.max_parameters must be positive")
	}
	return nil
}

func (c *Config) validateGodObjects() error {
	if c.GodObjects.MaxMethods <= 0 {
		return fmt.Errorf("god_objects.max_methods must be positive")
	}
	return nil
}

func (c *Config) validateDuplication() error {
	if c.Duplication.MinNodes <= 0 {
		return fmt.Errorf("duplication.min_nodes must be positive")
	}
	return nil
}

func (c *Config) Save(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("magic_literals", c.MagicLiterals)
	v.Set("parameters", c.Parameters)
	v.Set("god_objects", c.GodObjects)
	v.Set("duplication", c.Duplication)
	v.Set("scanner", c.Scanner)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
