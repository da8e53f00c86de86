package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/draklow/deckhand/internal/settings"
)

// Config captures the minimal fields deckhand needs from ferryd's config.
type Config struct {
	Path   string // resolved config file path, fed to the settings editor
	LogDir string
}

const (
	defaultConfigPath = "~/.config/ferryd/config.toml"
	defaultLogDir     = "~/.local/share/ferryd/logs"
)

// Load locates and parses the ferryd config, falling back to defaults when
// missing. The resolved path is kept even when the file does not exist, so
// the settings editor knows where a future save would land.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Path: resolved, LogDir: defaultLogDir}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.LogDir = mustExpand(defaultLogDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	var raw struct {
		Storage struct {
			LogDir string `toml:"log_dir"`
		} `toml:"storage"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.LogDir = strings.TrimSpace(raw.Storage.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

// DaemonLogPath returns the path to the primary ferryd log file.
func (c Config) DaemonLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/ferryd.log")
	}
	return filepath.Join(c.LogDir, "ferryd.log")
}

// EditableFields declares the ferryd fields the settings editor offers, in
// display order. The schema is the single place that knows each field's
// type, bounds and default.
func EditableFields() []settings.Spec {
	return []settings.Spec{
		{Section: "daemon", Key: "auto_start", Type: settings.BoolType{}, Default: "true"},
		{Section: "daemon", Key: "log_level", Type: settings.EnumType{Values: []string{"debug", "info", "warn", "error"}}, Default: "info"},
		{Section: "daemon", Key: "workers", Type: settings.FloatType{Min: 1, Max: 64, Bounded: true}, Default: "4"},
		{Section: "network", Key: "api_bind", Type: settings.TextType{}, Default: "127.0.0.1:7173"},
		{Section: "network", Key: "poll_timeout", Type: settings.FloatType{Min: 0.1, Max: 60, Precision: 1, Bounded: true}, Default: "2.0"},
		{Section: "network", Key: "tls", Type: settings.BoolType{}, Default: "false"},
		{Section: "storage", Key: "log_dir", Type: settings.TextType{}, Default: defaultLogDir},
		{Section: "storage", Key: "retention", Type: settings.EnumType{Values: []string{"day", "week", "month", "forever"}}, Default: "week"},
		{Section: "storage", Key: "max_disk_gb", Type: settings.FloatType{Min: 1, Max: 4096, Bounded: true}, Default: "32"},
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
