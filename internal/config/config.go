package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. TRIE_SHELL_PROMPT.
const envPrefix = "TRIE"

// Config holds all configuration for the shell
type Config struct {
	Shell ShellConfig `mapstructure:"shell"`
	Log   LogConfig   `mapstructure:"log"`
}

// ShellConfig holds the interactive session settings
type ShellConfig struct {
	Prompt      string `mapstructure:"prompt"`
	HistoryFile string `mapstructure:"history_file"`
	ErrorPrefix string `mapstructure:"error_prefix"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from an optional file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("shell.prompt", "trie> ")
	v.SetDefault("shell.history_file", "")
	v.SetDefault("shell.error_prefix", "Error! ")
	v.SetDefault("log.level", "warn")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Shell.Prompt == "" {
		return fmt.Errorf("shell prompt cannot be empty")
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ZerologLevel parses the configured level name.
func (c *LogConfig) ZerologLevel() (zerolog.Level, error) {
	if c.Level == "" {
		return zerolog.NoLevel, fmt.Errorf("log level cannot be empty")
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return lvl, nil
}
