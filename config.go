package turtle

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFile is looked up in the user's home directory.
const ConfigFile = ".turtlerc.yaml"

type Config struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	Mode          string `yaml:"mode"`
	Background    string `yaml:"background"`
	DelayMS       int    `yaml:"delay_ms"`
	UndoBuffer    int    `yaml:"undo_buffer"`
	Tracer        int    `yaml:"tracer"`
	Speed         *int   `yaml:"speed"`
	SaveDirectory string `yaml:"save_directory"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      defaultWidth,
		Height:     defaultHeight,
		Title:      defaultTitle,
		Mode:       ModeStandard.String(),
		Background: "white",
		DelayMS:    int(defaultDelay / time.Millisecond),
		UndoBuffer: defaultUndoBuffer,
	}
}

// LoadConfig reads ~/.turtlerc.yaml. A missing file or home directory
// yields the defaults.
func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	cfg, err := LoadConfigFile(filepath.Join(homeDir, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadConfigFile reads a YAML config, filling unset fields with defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// normalize clamps out-of-range numbers instead of rejecting them and
// expands the save directory.
func (c *Config) normalize() error {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.UndoBuffer < 1 {
		c.UndoBuffer = 1
	}
	if c.DelayMS < 0 {
		c.DelayMS = 0
	}
	if c.Tracer < 0 {
		c.Tracer = 0
	}
	if _, err := c.ScreenMode(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}

	value := c.SaveDirectory
	if value == "" {
		return nil
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	c.SaveDirectory = value
	return nil
}

func (c *Config) ScreenMode() (ScreenMode, error) {
	switch strings.ToLower(c.Mode) {
	case "", "standard":
		return ModeStandard, nil
	case "logo":
		return ModeLogo, nil
	}
	return ModeStandard, fmt.Errorf("unknown screen mode %q", c.Mode)
}

func (c *Config) BackgroundColor() (color.Color, error) {
	if c.Background == "" {
		return defaultBackground, nil
	}
	return ParseColor(c.Background)
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// SavePath places a bare filename in the configured save directory,
// creating the directory if needed.
func (c *Config) SavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
