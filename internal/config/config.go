// Package config handles loading and saving configuration for shenshu.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/shenshu/internal/signs"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultDelay is how long the interactive views stay busy before revealing
// a reading.
const DefaultDelay = 2 * time.Second

// Config keys.
const (
	KeyDelay     = "delay"
	KeySignsFile = "signs_file"
	KeyVerbose   = "verbose"
)

// Config holds user configuration.
type Config struct {
	Delay     time.Duration `yaml:"delay" mapstructure:"delay"`           // Busy window before a reading is shown
	SignsFile string        `yaml:"signs_file" mapstructure:"signs_file"` // Alternate course table, empty for the embedded one
	Verbose   bool          `yaml:"verbose" mapstructure:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Delay: DefaultDelay}
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDelay, DefaultDelay)
	v.SetDefault(KeySignsFile, "")
	v.SetDefault(KeyVerbose, false)
}

// Load reads configuration from v, which may already hold values from a
// config file, environment variables and flags.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Delay:     v.GetDuration(KeyDelay),
		SignsFile: v.GetString(KeySignsFile),
		Verbose:   v.GetBool(KeyVerbose),
	}

	if cfg.Delay < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %s", KeyDelay, cfg.Delay)
	}
	if cfg.SignsFile != "" {
		cfg.SignsFile = expandHome(cfg.SignsFile)
	}

	return cfg, nil
}

// LoadSigns returns the course table named by the config, or the embedded
// table when none is set.
func (c *Config) LoadSigns() (*signs.Table, error) {
	if c.SignsFile == "" {
		return signs.Default(), nil
	}
	t, err := signs.LoadFile(c.SignsFile)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.SignsFile, err)
	}
	return t, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data := struct {
		Delay     string `yaml:"delay"`
		SignsFile string `yaml:"signs_file,omitempty"`
		Verbose   bool   `yaml:"verbose"`
	}{
		Delay:     cfg.Delay.String(),
		SignsFile: cfg.SignsFile,
		Verbose:   cfg.Verbose,
	}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ExportSigns writes a course table as an editable YAML file.
func ExportSigns(path string, t *signs.Table) error {
	type row struct {
		Name        string `yaml:"name"`
		Explain     string `yaml:"explain"`
		Description string `yaml:"description"`
		Avoid       string `yaml:"avoid"`
	}

	var doc struct {
		Placeholder bool  `yaml:"placeholder"`
		Signs       []row `yaml:"signs"`
	}
	doc.Placeholder = t.Placeholder()
	for _, s := range t.All() {
		doc.Signs = append(doc.Signs, row{
			Name:        s.Name,
			Explain:     s.Paraphrase.Explain,
			Description: s.Paraphrase.Description,
			Avoid:       s.Paraphrase.Avoid,
		})
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling signs: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing signs file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shenshu"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
