package host

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config holds window and timing settings for Run. Zero fields take the
// defaults listed on each field.
type Config struct {
	Title  string `yaml:"title"`  // "motion"
	Width  int    `yaml:"width"`  // 640
	Height int    `yaml:"height"` // 480

	// TPS is the fixed update rate; each update ticks the driver by
	// TimeScale/TPS seconds.
	TPS       int     `yaml:"tps"`       // 60
	TimeScale float64 `yaml:"timeScale"` // 1

	// Background is a hex color ("#rrggbb") the screen is cleared to.
	Background string `yaml:"background"` // "#1a1a26"

	// ScreenshotDir receives PNGs from Game.Screenshot.
	ScreenshotDir string `yaml:"screenshotDir"` // "screenshots"

	ShowFPS  bool   `yaml:"showFPS"`
	Debug    bool   `yaml:"debug"`
	LogLevel string `yaml:"logLevel"` // "info"
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("host: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML, fills defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("host: decode config: %w", err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "motion"
	}
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 480
	}
	if c.TPS == 0 {
		c.TPS = 60
	}
	if c.TimeScale == 0 {
		c.TimeScale = 1
	}
	if c.Background == "" {
		c.Background = "#1a1a26"
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}

func (c Config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("host: invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("host: invalid tps %d", c.TPS)
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("host: invalid time scale %g", c.TimeScale)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("host: invalid background %q: %w", c.Background, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("host: invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// NewLogger returns a text logger writing to w at the configured level. An
// unparsable level falls back to info.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// BackgroundColor returns the parsed background, or black if it does not
// parse.
func (c Config) BackgroundColor() colorful.Color {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return colorful.Color{}
	}
	return col
}
