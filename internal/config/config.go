// Package config provides configuration management for the htr application.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the htr application.
// Configuration precedence: CLI flags > Environment variables > Config file > Defaults
type Config struct {
	// Engine selects the recognition engine (tesseract, command, remote)
	Engine string

	// EnginePath is the tesseract executable location used by the command
	// engine, supplied once at startup
	EnginePath string

	// EngineEndpoint is the recognition service address used by the remote engine
	EngineEndpoint string

	// EngineModel is the vision model used by the remote engine
	EngineModel string

	// Languages are the recognition languages, joined with "+" (e.g. "eng", "eng+fra")
	Languages string

	// OutputDir is the directory PDF artifacts are written to
	OutputDir string

	// LogLevel controls logging verbosity (debug, info, warn, error)
	LogLevel string
}

// Load reads configuration from multiple sources and returns a Config
// instance. Sources are checked in this order: env vars > config file >
// defaults; CLI flag overrides are applied by the command layer.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
			v.SetConfigName(".htr")
			v.SetConfigType("yaml")
		}
	}

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("HTR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	config := &Config{
		Engine:         v.GetString("engine"),
		EnginePath:     v.GetString("engine-path"),
		EngineEndpoint: v.GetString("engine-endpoint"),
		EngineModel:    v.GetString("engine-model"),
		Languages:      v.GetString("languages"),
		OutputDir:      v.GetString("output-dir"),
		LogLevel:       v.GetString("log-level"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("engine", "tesseract")
	v.SetDefault("engine-path", "")
	v.SetDefault("engine-endpoint", "http://localhost:11434")
	v.SetDefault("engine-model", "llava")
	v.SetDefault("languages", "eng")
	v.SetDefault("output-dir", "output")
	v.SetDefault("log-level", "info")
}

// Validate checks that the configuration is valid and internally consistent
func (c *Config) Validate() error {
	validEngines := map[string]bool{
		"tesseract": true,
		"command":   true,
		"remote":    true,
	}
	if !validEngines[strings.ToLower(c.Engine)] {
		return fmt.Errorf("invalid engine %q, must be one of: tesseract, command, remote", c.Engine)
	}
	c.Engine = strings.ToLower(c.Engine)

	if c.Engine == "command" && c.EnginePath == "" {
		return fmt.Errorf("engine-path cannot be empty for the command engine")
	}

	if c.Engine == "remote" && c.EngineEndpoint == "" {
		return fmt.Errorf("engine-endpoint cannot be empty for the remote engine")
	}

	if c.Languages == "" {
		return fmt.Errorf("languages cannot be empty")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output-dir cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log-level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	return nil
}

// LanguageList splits the configured languages into Tesseract language codes.
func (c *Config) LanguageList() []string {
	return strings.Split(c.Languages, "+")
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  Engine: %s
  EnginePath: %s
  EngineEndpoint: %s
  EngineModel: %s
  Languages: %s
  OutputDir: %s
  LogLevel: %s`,
		c.Engine,
		c.EnginePath,
		c.EngineEndpoint,
		c.EngineModel,
		c.Languages,
		c.OutputDir,
		c.LogLevel,
	)
}
