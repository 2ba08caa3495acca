package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "github.com/go-ini/ini"

	"hangulpad/internal/types"
)

const (
	DefaultFileName = "hangulpad.ini"

	defaultLayout = "dubeolsik"
)

// Config holds settings read from hangulpad.ini. Verbose only raises the log
// level.
type Config struct {
	Layout       string
	KeypairsPath string
	DefaultMode  types.InputMode
	Verbose      bool
	Strict       bool
}

type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func Default() Config {
	return Config{Layout: defaultLayout, DefaultMode: types.ModeHangul}
}

// Load reads an INI file on top of the defaults. A missing file is not an
// error.
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
		return cfg, ConfigError{msg: fmt.Sprintf("config: %v", err)}
	}
	if info.IsDir() {
		return cfg, ConfigError{msg: fmt.Sprintf("config: %s is a directory", path)}
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, ConfigError{msg: fmt.Sprintf("config: %v", err)}
	}

	layoutSection := file.Section("layout")
	cfg.Layout = layoutSection.Key("name").MustString(cfg.Layout)
	if keypairs := layoutSection.Key("keypairs").String(); keypairs != "" {
		cfg.KeypairsPath = resolveRelative(path, keypairs)
	}

	if mode := file.Section("toggle").Key("default_mode").String(); mode != "" {
		parsed, err := types.ParseInputMode(mode)
		if err != nil {
			return cfg, ConfigError{msg: fmt.Sprintf("invalid default_mode '%s' in %s", mode, path)}
		}
		cfg.DefaultMode = parsed
	}

	debug := file.Section("debug")
	if cfg.Verbose, err = readBool(debug, "verbose", cfg.Verbose); err != nil {
		return cfg, ConfigError{msg: fmt.Sprintf("%s: %v", path, err)}
	}
	if cfg.Strict, err = readBool(debug, "strict", cfg.Strict); err != nil {
		return cfg, ConfigError{msg: fmt.Sprintf("%s: %v", path, err)}
	}
	return cfg, nil
}

func readBool(section *ini.Section, name string, def bool) (bool, error) {
	if !section.HasKey(name) {
		return def, nil
	}
	value, err := section.Key(name).Bool()
	if err != nil {
		return def, fmt.Errorf("invalid boolean for %s: %q", name, section.Key(name).String())
	}
	return value, nil
}

// resolveRelative makes a path from the config file relative to the file's
// own directory.
func resolveRelative(configPath, value string) string {
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(filepath.Dir(configPath), value)
}

// Resolve loads cliPath when given, otherwise ./hangulpad.ini if present.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		if _, err := os.Stat(cliPath); err != nil {
			return Default(), ConfigError{msg: fmt.Sprintf("config: %v", err)}
		}
		return Load(cliPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default(), nil
	}
	defaultPath := filepath.Join(cwd, DefaultFileName)
	if _, statErr := os.Stat(defaultPath); statErr == nil {
		return Load(defaultPath)
	}
	return Default(), nil
}
