package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type Config struct {
	Library struct {
		Path         string `usage:"Load exactly this OpenAL library instead of searching for one" toml:"path" env:"PATH"`
		PreferSystem bool   `default:"true" usage:"Try the system's OpenAL before bundled builds" toml:"prefer_system" env:"PREFER_SYSTEM"`
	} `toml:"library" env:"LIBRARY"`
	Log struct {
		Level string `default:"info" usage:"Minimum level for log messages (debug, info, warn, error, fatal)" toml:"level" env:"LEVEL"`
		JSON  bool   `usage:"Log JSON instead of colored text" toml:"json" env:"JSON"`
		File  string `usage:"Write log messages to this file instead of stderr" toml:"file" env:"FILE"`
	} `toml:"log" env:"LOG"`
	State struct {
		Path string `usage:"Path to the probe history database" toml:"path" env:"PATH"`
	} `toml:"state" env:"STATE"`
}

// DefaultPath returns the location of the config file if none was passed on the command line.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "alinfo.toml"
	}
	return filepath.Join(dir, "alinfo", "config.toml")
}

// Loader prepares a loader that reads defaults, then the TOML file at path (if it exists)
// and finally ALINFO_* environment variables.
func Loader(path string) (*Config, *aconfig.Loader) {
	cfg := new(Config)
	var files []string
	if path != "" {
		files = []string{path}
	}

	loader := aconfig.LoaderFor(cfg, aconfig.Config{
		SkipFlags: true,
		EnvPrefix: "ALINFO",
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})

	return cfg, loader
}

// Load is a shortcut for Loader followed by Load and Validate.
func Load(path string) (*Config, error) {
	cfg, loader := Loader(path)
	if err := loader.Load(); err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.Log.Level)
	}

	if c.State.Path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return eris.Wrap(err, "failed to determine default state path")
		}
		c.State.Path = filepath.Join(dir, "alinfo", "state.db")
	}

	return nil
}

func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
