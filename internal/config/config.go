package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/ini.v1"

	"hanfind/internal/catalog"
	"hanfind/internal/normalize"
)

// DefaultFileName is looked up in the working directory when no path is
// given on the command line.
const DefaultFileName = "hanfind.ini"

type Config struct {
	Search  SearchConfig
	Catalog catalog.Source
	Log     LogConfig
}

type SearchConfig struct {
	Normalize     string
	StrictPartial bool
	CacheSize     int
	Workers       int
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func Default() Config {
	return Config{
		Search: SearchConfig{
			Normalize: normalize.ModeFold,
			CacheSize: 4096,
		},
		Catalog: catalog.Source{Kind: catalog.KindBuiltin},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path on top of the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, ConfigError{msg: fmt.Sprintf("config: %s is a directory", path)}
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	search := file.Section("search")
	cfg.Search.Normalize = strings.ToLower(search.Key("normalize").MustString(cfg.Search.Normalize))
	cfg.Search.StrictPartial = search.Key("strict_partial").MustBool(cfg.Search.StrictPartial)
	cfg.Search.CacheSize = search.Key("cache_size").MustInt(cfg.Search.CacheSize)
	cfg.Search.Workers = search.Key("workers").MustInt(cfg.Search.Workers)

	cat := file.Section("catalog")
	cfg.Catalog.Kind = strings.ToLower(cat.Key("source").MustString(cfg.Catalog.Kind))
	cfg.Catalog.Path = cat.Key("path").String()
	cfg.Catalog.Query = cat.Key("query").String()

	logs := file.Section("log")
	cfg.Log.Level = strings.ToLower(logs.Key("level").MustString(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(logs.Key("format").MustString(cfg.Log.Format))
	cfg.Log.File = logs.Key("file").String()

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads cliPath when set, otherwise ./hanfind.ini if it exists,
// otherwise the defaults.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		if _, err := os.Stat(cliPath); err != nil {
			return Default(), ConfigError{msg: fmt.Sprintf("failed to open config: %v", err)}
		}
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(cwd, DefaultFileName))
}

func (c Config) Validate() error {
	if !slices.Contains(normalize.Modes(), c.Search.Normalize) {
		return ConfigError{msg: fmt.Sprintf("invalid normalize '%s' (want %s)", c.Search.Normalize, strings.Join(normalize.Modes(), ", "))}
	}
	if c.Search.CacheSize < 0 {
		return ConfigError{msg: fmt.Sprintf("invalid cache_size %d", c.Search.CacheSize)}
	}
	if c.Search.Workers < 0 {
		return ConfigError{msg: fmt.Sprintf("invalid workers %d", c.Search.Workers)}
	}
	if !slices.Contains(catalog.Kinds(), c.Catalog.Kind) {
		return ConfigError{msg: fmt.Sprintf("invalid catalog source '%s' (want %s)", c.Catalog.Kind, strings.Join(catalog.Kinds(), ", "))}
	}
	if c.Catalog.Kind != catalog.KindBuiltin && strings.TrimSpace(c.Catalog.Path) == "" {
		return ConfigError{msg: fmt.Sprintf("catalog source '%s' needs a path", c.Catalog.Kind)}
	}
	if c.Catalog.Kind == catalog.KindSQLite && strings.TrimSpace(c.Catalog.Query) == "" {
		return ConfigError{msg: "catalog source 'sqlite' needs a query"}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ConfigError{msg: fmt.Sprintf("invalid log level '%s'", c.Log.Level)}
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return ConfigError{msg: fmt.Sprintf("invalid log format '%s'", c.Log.Format)}
	}
	return nil
}
