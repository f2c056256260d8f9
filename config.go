package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".pixtermrc"

type Config struct {
	SaveDirectory     string        `yaml:"save_directory"`
	ResponsivePadding bool          `yaml:"responsive_padding"`
	HistoryLimit      int           `yaml:"history_limit"`
	ResizeInterval    time.Duration `yaml:"resize_interval"`
	LogFile           string        `yaml:"log_file"`
	StartColor        []int         `yaml:"start_color"`
}

func defaultConfig() *Config {
	return &Config{
		ResponsivePadding: true,
		HistoryLimit:      defaultHistoryLimit,
		ResizeInterval:    defaultResizeInterval,
	}
}

// loadConfig reads YAML settings from path, or from ~/.pixtermrc when path
// is empty. A missing default file yields the defaults; a missing explicit
// file is an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return config, nil
		}
		path = filepath.Join(home, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.normalize(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) normalize() error {
	c.SaveDirectory = expandPath(c.SaveDirectory)
	c.LogFile = expandPath(c.LogFile)

	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	if c.ResizeInterval <= 0 {
		c.ResizeInterval = defaultResizeInterval
	}
	if c.StartColor != nil {
		if len(c.StartColor) != 3 {
			return fmt.Errorf("start_color needs 3 values [h, s, v], got %d", len(c.StartColor))
		}
		h, s, v := c.StartColor[0], c.StartColor[1], c.StartColor[2]
		if h < 0 || h > hueMax || s < 0 || s > channelMax || v < 0 || v > channelMax {
			return fmt.Errorf("start_color %v out of range", c.StartColor)
		}
	}
	return nil
}

// expandPath resolves a leading ~ and makes the path absolute.
func expandPath(p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}

func (c *Config) startBrush() HSV {
	if len(c.StartColor) != 3 {
		return defaultBrush
	}
	return quantize(HSV{uint8(c.StartColor[0]), uint8(c.StartColor[1]), uint8(c.StartColor[2])})
}

// newImagePath places a new image in the save directory unless the name
// already carries a directory.
func (c *Config) newImagePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) || filepath.Dir(filename) != "." {
		return filename
	}
	return filepath.Join(c.SaveDirectory, filename)
}

// GetSavePath is newImagePath with the save directory created on demand.
func (c *Config) GetSavePath(filename string) (string, error) {
	path := c.newImagePath(filename)
	if path == filename {
		return path, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return path, nil
}
