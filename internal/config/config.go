// Package config loads strata's configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/strata-tools/cli/internal/paths"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Output   OutputConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds registry storage settings.
type DatabaseConfig struct {
	Path string
}

// OutputConfig holds rendering defaults. Format is the default output
// format applied before global options are parsed, so an explicit
// --format flag still wins.
type OutputConfig struct {
	Format string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Color bool
	Pager string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use the
// prefix STRATA_, e.g. STRATA_OUTPUT_FORMAT=json. A missing config file
// is not an error; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", paths.DatabasePath())
	v.SetDefault("output.format", "text")
	v.SetDefault("ui.color", true)
	v.SetDefault("ui.pager", "")
	v.SetDefault("log.path", paths.LogPath())
	v.SetDefault("log.level", "warn")

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("STRATA_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(paths.ConfigDir())
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "strata"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STRATA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Output: OutputConfig{
			Format: v.GetString("output.format"),
		},
		UI: UIConfig{
			Color: v.GetBool("ui.color"),
			Pager: v.GetString("ui.pager"),
		},
		Log: LogConfig{
			Path:  v.GetString("log.path"),
			Level: v.GetString("log.level"),
		},
	}, nil
}
