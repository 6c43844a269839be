// Package config resolves tool settings from defaults, config files, and
// TXNQA_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Config represents the resolved tool configuration.
type Config struct {
	Format       string `mapstructure:"format"`
	Output       string `mapstructure:"output"`
	Quiet        bool   `mapstructure:"quiet"`
	Verbose      bool   `mapstructure:"verbose"`
	Workers      int    `mapstructure:"workers"`
	Delimiter    string `mapstructure:"delimiter"`
	TrimSpace    bool   `mapstructure:"trimSpace"`
	Progress     bool   `mapstructure:"progress"`
	Save         bool   `mapstructure:"save"`
	HistoryDB    string `mapstructure:"historyDB"`
	Transactions string `mapstructure:"transactions"`
	Customers    string `mapstructure:"customers"`
	Merchants    string `mapstructure:"merchants"`
}

var configPaths = []string{".txnqa.yaml", ".txnqa.yml", ".txnqa.json"}

// LoadConfig loads configuration from defaults, an optional config file, and
// the environment. An explicit cfgFile must exist; the default candidates
// are skipped silently when absent.
func LoadConfig(cfgFile string) (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("workers", 0)
	viper.SetDefault("delimiter", "")
	viper.SetDefault("trimSpace", true)
	viper.SetDefault("progress", true)
	viper.SetDefault("save", false)
	viper.SetDefault("historyDB", filepath.Join(homeDir, ".txnqa", "history.db"))
	viper.SetDefault("transactions", "")
	viper.SetDefault("customers", "")
	viper.SetDefault("merchants", "")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	} else {
		for _, path := range configPaths {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err == nil {
				break
			}
		}
	}

	viper.SetEnvPrefix("TXNQA")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "yaml", "markdown", "md":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', 'yaml', or 'markdown'", config.Format)
	}

	if config.Quiet && config.Verbose {
		return fmt.Errorf("quiet and verbose are mutually exclusive")
	}

	if config.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}

	if _, err := config.DelimiterRune(); err != nil {
		return err
	}

	if config.Save && config.HistoryDB == "" {
		return fmt.Errorf("historyDB is required when save is enabled")
	}
	return nil
}

// DelimiterRune resolves the configured delimiter to a rune. Empty means
// sniff per file; "tab" is accepted as an alias for a tab character.
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case "tab", "\\t":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(c.Delimiter)
	if size != len(c.Delimiter) {
		return 0, fmt.Errorf("invalid delimiter: %q. Must be a single character", c.Delimiter)
	}
	return r, nil
}
