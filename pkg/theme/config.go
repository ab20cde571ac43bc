package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/overscroll/pkg/errors"
	"github.com/go-drift/overscroll/pkg/graphics"
)

// fileConfig mirrors the optional overscroll.yaml layout. Every field is
// optional; absent fields keep their DefaultGlow value.
type fileConfig struct {
	Glow glowConfig `yaml:"glow"`
}

type glowConfig struct {
	Color       string   `yaml:"color,omitempty"`
	MaxAlpha    *float64 `yaml:"max_alpha,omitempty"`
	PullMS      *int     `yaml:"pull_ms,omitempty"`
	RecedeMS    *int     `yaml:"recede_ms,omitempty"`
	PullDecayMS *int     `yaml:"pull_decay_ms,omitempty"`
	MinVelocity *int     `yaml:"min_velocity,omitempty"`
	MaxVelocity *int     `yaml:"max_velocity,omitempty"`
}

// LoadOptional reads overscroll.yaml from dir if present and resolves it
// over the default tuning. A missing file is not an error.
func LoadOptional(dir string) (Glow, error) {
	path := filepath.Join(dir, "overscroll.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlow(), nil
		}
		return DefaultGlow(), errors.E("theme.LoadOptional", errors.KindConfig, err)
	}
	return Parse(data)
}

// Parse resolves YAML configuration bytes over the default tuning.
func Parse(data []byte) (Glow, error) {
	glow := DefaultGlow()

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return glow, errors.E("theme.Parse", errors.KindConfig, err)
	}

	if cfg.Glow.Color != "" {
		color, err := ParseColor(cfg.Glow.Color)
		if err != nil {
			return glow, errors.E("theme.Parse", errors.KindConfig, err)
		}
		glow.Color = color
	}
	if cfg.Glow.MaxAlpha != nil {
		glow.MaxAlpha = graphics.Clamp(*cfg.Glow.MaxAlpha, 0, 1)
	}
	if cfg.Glow.PullMS != nil {
		glow.PullTime = time.Duration(*cfg.Glow.PullMS) * time.Millisecond
	}
	if cfg.Glow.RecedeMS != nil {
		glow.RecedeTime = time.Duration(*cfg.Glow.RecedeMS) * time.Millisecond
	}
	if cfg.Glow.PullDecayMS != nil {
		glow.PullDecayTime = time.Duration(*cfg.Glow.PullDecayMS) * time.Millisecond
	}
	if cfg.Glow.MinVelocity != nil {
		glow.MinVelocity = *cfg.Glow.MinVelocity
	}
	if cfg.Glow.MaxVelocity != nil {
		glow.MaxVelocity = *cfg.Glow.MaxVelocity
	}
	if glow.MaxVelocity < glow.MinVelocity {
		glow.MaxVelocity = glow.MinVelocity
	}
	return glow, nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" hex notation into an ARGB
// color. A six-digit value is treated as fully opaque.
func ParseColor(s string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return graphics.Color(value), nil
}
