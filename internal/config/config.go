package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdennie/create-rx-app/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized preference keys.
const (
	KeyInstaller = "installer" // auto | npm | yarn
	KeyColor     = "color"     // auto | always | never
	KeyTemplates = "templates" // template root override
)

// allowedValues holds the closed value sets; keys absent here accept any
// value.
var allowedValues = map[string][]string{
	KeyInstaller: {"auto", "npm", "yarn"},
	KeyColor:     {"auto", "always", "never"},
}

// Keys lists every recognized preference key.
func Keys() []string {
	return []string{KeyInstaller, KeyColor, KeyTemplates}
}

// Dir returns the path to the preferences directory (~/.create-rx-app/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the preferences file
// (~/.create-rx-app/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the preferences directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the preferences file and
// environment (RXAPP_INSTALLER and friends).
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyInstaller, "auto")
	viper.SetDefault(KeyColor, "auto")

	// Ignore error if the file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a preference value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Validate reports whether key is recognized and value is acceptable for
// it.
func Validate(key, value string) error {
	recognized := false
	for _, k := range Keys() {
		if k == key {
			recognized = true
			break
		}
	}
	if !recognized {
		return fmt.Errorf("unknown config key %q (recognized: %v)", key, Keys())
	}

	allowed, closed := allowedValues[key]
	if !closed {
		return nil
	}
	for _, v := range allowed {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for %s (allowed: %v)", value, key, allowed)
}

// Set writes a preference and saves the file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// TemplateRoot resolves the template directory for a run: an explicit
// override wins (flag value passed in, then the templates preference or
// RXAPP_TEMPLATES), then a templates directory next to the executable,
// then ./templates.
func TemplateRoot(override string) string {
	if override != "" {
		return override
	}
	if configured := Get(KeyTemplates); configured != "" {
		return configured
	}
	if exe, err := os.Executable(); err == nil {
		beside := filepath.Join(filepath.Dir(exe), "templates")
		if info, err := os.Stat(beside); err == nil && info.IsDir() {
			return beside
		}
	}
	return "templates"
}
