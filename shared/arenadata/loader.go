package arenadata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	cfg "github.com/automoto/stickfight/config"
	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

// ErrUnknownArena is returned for arena ids outside the enumerated set.
var ErrUnknownArena = errors.New("arenadata: unknown arena")

const (
	defaultBounceFactor = 0.8
	defaultStickyFactor = 0.5
)

// LoadGeometry parses a TMX file and returns the arena's platforms, static
// hazards and zones. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS for a directory on disk.
func LoadGeometry(fsys fs.FS, tmxPath string) (*Geometry, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("arenadata: load TMX %s: %w", tmxPath, err)
	}

	geo := &Geometry{}
	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for i, o := range og.Objects {
				geo.Platforms = append(geo.Platforms, platformFromObject(i, o))
			}
		case "Hazards":
			for _, o := range og.Objects {
				geo.Hazards = append(geo.Hazards, cfg.HazardZoneConfig{
					Kind:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Damage: o.Properties.GetFloat("damage"),
				})
			}
		case "Zones":
			for _, o := range og.Objects {
				geo.Zones = append(geo.Zones, cfg.ZoneConfig{
					Kind:      cfg.ZoneKind(o.Name),
					X:         o.X,
					Y:         o.Y,
					Width:     o.Width,
					Height:    o.Height,
					Direction: o.Properties.GetFloat("direction"),
					Strength:  o.Properties.GetFloat("strength"),
					FirstFire: o.Properties.GetInt("first_fire"),
				})
			}
		}
	}
	return geo, nil
}

func platformFromObject(index int, o *tiled.Object) cfg.PlatformConfig {
	p := cfg.PlatformConfig{
		ID:     o.Properties.GetInt("platform_id"),
		X:      o.X,
		Y:      o.Y,
		Width:  o.Width,
		Height: o.Height,
		StartX: o.X,

		Moving: o.Properties.GetBool("moving"),
		Speed:  o.Properties.GetFloat("speed"),
		Range:  o.Properties.GetFloat("range"),

		Breakable: o.Properties.GetBool("breakable"),
		Strength:  o.Properties.GetInt("strength"),

		Bouncy:       o.Properties.GetBool("bouncy"),
		BounceFactor: o.Properties.GetFloat("bounce_factor"),

		Sticky:       o.Properties.GetBool("sticky"),
		StickyFactor: o.Properties.GetFloat("sticky_factor"),
	}
	if o.Properties.GetBool("vertical") {
		p.StartY = o.Y
	}
	// Platforms are numbered from 1 in authoring order unless tagged
	if p.ID == 0 {
		p.ID = index + 1
	}
	if p.Bouncy && p.BounceFactor == 0 {
		p.BounceFactor = defaultBounceFactor
	}
	if p.Sticky && p.StickyFactor == 0 {
		p.StickyFactor = defaultStickyFactor
	}
	return p
}

// LoadSpec reads an arena's YAML file on top of the default tuning, so a
// file only lists what it changes.
func LoadSpec(fsys fs.FS, yamlPath string) (*ArenaSpec, error) {
	data, err := fs.ReadFile(fsys, yamlPath)
	if err != nil {
		return nil, fmt.Errorf("arenadata: load %s: %w", yamlPath, err)
	}

	spec := ArenaSpec{
		Physics: PhysicsSpec{
			Gravity:        cfg.Physics.Gravity,
			Friction:       0.9,
			JumpMultiplier: 1,
		},
		Hazards: cfg.Hazards,
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("arenadata: unmarshal %s: %w", yamlPath, err)
	}
	return &spec, nil
}

// LoadArena assembles the arena configuration for id from <dir>/<slug>.tmx
// and <dir>/<slug>.yaml.
func LoadArena(fsys fs.FS, dir string, id cfg.ArenaID) (*cfg.ArenaConfig, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownArena, int(id))
	}

	geo, err := LoadGeometry(fsys, path.Join(dir, id.Slug()+".tmx"))
	if err != nil {
		return nil, err
	}
	spec, err := LoadSpec(fsys, path.Join(dir, id.Slug()+".yaml"))
	if err != nil {
		return nil, err
	}

	arena := cfg.DefaultArena(id)
	if spec.Name != "" {
		arena.Name = spec.Name
	}
	arena.Description = spec.Description
	arena.Feature = spec.Feature
	if spec.Colors.Background != nil {
		arena.Background = spec.Colors.Background.RGBA
	}
	if spec.Colors.Ground != nil {
		arena.Ground = spec.Colors.Ground.RGBA
	}
	if spec.Colors.Platform != nil {
		arena.Platform = spec.Colors.Platform.RGBA
	}
	arena.Gravity = spec.Physics.Gravity
	arena.Friction = spec.Physics.Friction
	arena.JumpMultiplier = spec.Physics.JumpMultiplier
	arena.Platforms = geo.Platforms
	arena.Hazards = geo.Hazards
	arena.Zones = geo.Zones
	arena.Tuning = spec.Hazards
	return arena, nil
}

// LoadAll loads every enumerated arena from dir.
func LoadAll(fsys fs.FS, dir string) (map[cfg.ArenaID]*cfg.ArenaConfig, error) {
	arenas := make(map[cfg.ArenaID]*cfg.ArenaConfig, int(cfg.ArenaCount))
	for id := cfg.ArenaID(0); id < cfg.ArenaCount; id++ {
		arena, err := LoadArena(fsys, dir, id)
		if err != nil {
			return nil, err
		}
		arenas[id] = arena
	}
	return arenas, nil
}
