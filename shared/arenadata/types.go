package arenadata

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	cfg "github.com/automoto/stickfight/config"
	"gopkg.in/yaml.v3"
)

// Color is a hex color string ("#rrggbb" or "#rrggbbaa") in arena files.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := parseHex(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	channel := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}
	var out [4]uint8
	out[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := channel(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		out[i] = v
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

// ColorSpec holds the arena palette.
type ColorSpec struct {
	Background *Color `yaml:"background"`
	Ground     *Color `yaml:"ground"`
	Platform   *Color `yaml:"platform"`
}

// PhysicsSpec holds the arena's scalar physics overrides.
type PhysicsSpec struct {
	Gravity        float64 `yaml:"gravity"`
	Friction       float64 `yaml:"friction"`
	JumpMultiplier float64 `yaml:"jump_multiplier"`
}

// ArenaSpec is the YAML half of an arena: presentation, physics and hazard
// tuning. Geometry lives in the TMX half.
type ArenaSpec struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Feature     string           `yaml:"feature"`
	Colors      ColorSpec        `yaml:"colors"`
	Physics     PhysicsSpec      `yaml:"physics"`
	Hazards     cfg.HazardTuning `yaml:"hazards"`
}

// Geometry is the TMX half of an arena.
type Geometry struct {
	Platforms []cfg.PlatformConfig
	Hazards   []cfg.HazardZoneConfig
	Zones     []cfg.ZoneConfig
}
