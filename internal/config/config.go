// Copyright (c) 2026 Cithare Team
// Cithare - terminal password manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads cithare settings from defaults, the cithare.yaml
// file, CITHARE_* environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	AppName   = "cithare"
	VaultFile = ".citharecf"
	EnvPrefix = "cithare"
)

// Database selects where the sealed vault lives. Type is one of file,
// sqlite, postgres or mysql; an empty Dsn with the file type means the
// default data path.
type Database struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// Display tunes the grid shown by `show`.
type Display struct {
	HoldSeconds  int  `mapstructure:"hold_seconds" yaml:"hold_seconds"`
	WaitForKey   bool `mapstructure:"wait_for_key" yaml:"wait_for_key"`
	ShowPassword bool `mapstructure:"show_password" yaml:"show_password"`
}

// Hold returns HoldSeconds as a duration, never negative.
func (d Display) Hold() time.Duration {
	if d.HoldSeconds < 0 {
		return 0
	}
	return time.Duration(d.HoldSeconds) * time.Second
}

type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type Config struct {
	Database Database `mapstructure:"database" yaml:"database"`
	Language string   `mapstructure:"language" yaml:"language"`
	Display  Display  `mapstructure:"display" yaml:"display"`
	Log      Log      `mapstructure:"log" yaml:"log"`
}

// Defaults returns the baseline values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":         "file",
		"database.dsn":          "",
		"language":              "en",
		"display.hold_seconds":  3,
		"display.wait_for_key":  true,
		"display.show_password": false,
		"log.level":             "info",
	}
}

// GetConfigPath returns the full path of the user or system config file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Cithare")
		default:
			configDir = "/etc/cithare"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, AppName)
	}
	return filepath.Join(configDir, AppName+".yaml"), nil
}

// LoadConfig builds a T from defaults, the first cithare.yaml found (or
// configFile when given), the environment and cmd's flags. A missing
// config file is reported as viper.ConfigFileNotFoundError alongside a
// fully populated value so callers can carry on with defaults.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(AppName)
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, err
		}
		notFound = err
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// WriteConfigFile stores c as YAML in the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, data, 0o600)
}

// DataDir returns $XDG_DATA_HOME/cithare (default ~/.local/share/cithare),
// creating it when missing.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("could not create data directory %s: %w", dir, err)
	}
	return dir, nil
}

// VaultPath returns the default location of the sealed vault file.
func VaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, VaultFile), nil
}
