package gizmos

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that reads from "250ms"-style strings.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config drives the bundled programs. Every field is optional.
type Config struct {
	LogPrefix    string   `toml:"log_prefix" yaml:"log_prefix"`
	Debug        bool     `toml:"debug" yaml:"debug"`
	DefaultColor string   `toml:"default_color" yaml:"default_color"`
	CircleSides  int      `toml:"circle_sides" yaml:"circle_sides"`
	FixedStep    Duration `toml:"fixed_step" yaml:"fixed_step"`
	MaxFrames    int      `toml:"max_frames" yaml:"max_frames"`
	Width        int      `toml:"width" yaml:"width"`
	Height       int      `toml:"height" yaml:"height"`
	Output       string   `toml:"output" yaml:"output"`
}

func DefaultConfig() Config {
	return Config{
		LogPrefix:    "gizmos",
		DefaultColor: "magenta",
		CircleSides:  DefaultCircleSides,
		FixedStep:    Duration(DefaultFixedStep),
		MaxFrames:    120,
		Width:        800,
		Height:       600,
		Output:       "gizmos.png",
	}
}

// LoadConfig reads a .toml, .yaml or .yml file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.CircleSides <= 2 {
		return fmt.Errorf("config: circle_sides must be greater than 2, got %d", c.CircleSides)
	}
	if c.FixedStep < 0 {
		return fmt.Errorf("config: fixed_step must not be negative")
	}
	if _, err := ParseColor(c.DefaultColor); err != nil {
		return fmt.Errorf("config: default_color: %w", err)
	}
	return nil
}

// Color returns the configured default color, falling back to DefaultColor.
func (c Config) Color() Color {
	col, err := ParseColor(c.DefaultColor)
	if err != nil || col.IsZero() {
		return DefaultColor
	}
	return col
}

// Modules returns the host modules the configuration describes.
func (c Config) Modules() []Module {
	return []Module{
		LoggingModule{Prefix: c.LogPrefix, Debug: c.Debug},
		TimeModule{FixedStep: time.Duration(c.FixedStep)},
		GizmosModule{},
		EmitterModule{},
	}
}

// ParseColor accepts an SVG color name ("magenta"), "#rgb", "#rrggbb" or
// "#rrggbbaa". The empty string is the unset color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, nil
	}
	if named, ok := colornames.Map[s]; ok {
		return ColorFrom(named), nil
	}
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("malformed hex color %q", s)
	}

	var r, g, b, a uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
		return Color{}, fmt.Errorf("malformed hex color %q: %w", s, err)
	}
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}, nil
}
