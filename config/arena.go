package config

import (
	"image/color"
	"strings"
)

// ArenaID enumerates the selectable arenas.
type ArenaID int

const (
	ArenaSpaceStation ArenaID = iota
	ArenaIceCave
	ArenaVolcano
	ArenaNeonCity
	ArenaUnderwater
	ArenaHaunted
	ArenaCount // Must be last
)

var arenaSlugs = [ArenaCount]string{
	"space_station",
	"ice_cave",
	"volcano",
	"neon_city",
	"underwater_reef",
	"haunted_mansion",
}

var arenaNames = [ArenaCount]string{
	"Space Station",
	"Ice Cave",
	"Volcano Arena",
	"Neon City",
	"Underwater Reef",
	"Haunted Mansion",
}

// Valid reports whether the id names a known arena.
func (a ArenaID) Valid() bool {
	return a >= 0 && a < ArenaCount
}

// Slug is the file stem used for the arena's data files.
func (a ArenaID) Slug() string {
	if !a.Valid() {
		return ""
	}
	return arenaSlugs[a]
}

func (a ArenaID) String() string {
	if !a.Valid() {
		return "Unknown Arena"
	}
	return arenaNames[a]
}

// ParseArenaID resolves a slug or display name.
func ParseArenaID(s string) (ArenaID, bool) {
	for id := ArenaID(0); id < ArenaCount; id++ {
		if strings.EqualFold(s, arenaSlugs[id]) || strings.EqualFold(s, arenaNames[id]) {
			return id, true
		}
	}
	return 0, false
}

// PlatformConfig is one platform as authored in the arena map.
type PlatformConfig struct {
	ID     int
	X, Y   float64 // Top-left corner; Y is the standing surface
	Width  float64
	Height float64

	// Periodic motion: x = StartX + sin(frame*0.02*Speed)*Range/2. A non-zero
	// StartY also moves the platform vertically by the same offset.
	Moving bool
	Speed  float64
	Range  float64
	StartX float64
	StartY float64

	Breakable bool
	Strength  int

	Bouncy       bool
	BounceFactor float64

	Sticky       bool
	StickyFactor float64
}

// HazardZoneConfig is a static damage rectangle.
type HazardZoneConfig struct {
	Kind   string
	X, Y   float64
	Width  float64
	Height float64
	Damage float64
}

// ZoneKind names a non-damaging arena region.
type ZoneKind string

const (
	ZoneGravityWell ZoneKind = "gravity_well"
	ZoneCurrent     ZoneKind = "current"
	ZoneVolcano     ZoneKind = "volcano"
)

// ZoneConfig is a region that pushes fighters or anchors a hazard source.
type ZoneConfig struct {
	Kind      ZoneKind
	X, Y      float64
	Width     float64
	Height    float64
	Direction float64 // Current push sign
	Strength  float64
	FirstFire int // Volcano: frames before the first eruption
}

// ArenaConfig is the immutable per-match arena description.
type ArenaConfig struct {
	ID          ArenaID
	Name        string
	Description string
	Feature     string
	Background  color.RGBA
	Ground      color.RGBA
	Platform    color.RGBA

	Gravity        float64
	Friction       float64
	JumpMultiplier float64

	Platforms []PlatformConfig
	Hazards   []HazardZoneConfig
	Zones     []ZoneConfig

	Tuning HazardTuning
}

// ZonesOf returns the zones of one kind in authoring order.
func (a *ArenaConfig) ZonesOf(kind ZoneKind) []ZoneConfig {
	var out []ZoneConfig
	for _, z := range a.Zones {
		if z.Kind == kind {
			out = append(out, z)
		}
	}
	return out
}

// PlatformIndex returns the slice index of the platform with the given id.
func (a *ArenaConfig) PlatformIndex(id int) int {
	for i, p := range a.Platforms {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// DefaultArena returns a flat arena with base physics and no hazards. It is
// used when arena data cannot be loaded.
func DefaultArena(id ArenaID) *ArenaConfig {
	return &ArenaConfig{
		ID:             id,
		Name:           id.String(),
		Background:     color.RGBA{R: 15, G: 23, B: 42, A: 255},
		Ground:         color.RGBA{R: 51, G: 65, B: 85, A: 255},
		Platform:       color.RGBA{R: 100, G: 116, B: 139, A: 255},
		Gravity:        Physics.Gravity,
		Friction:       0.9,
		JumpMultiplier: 1,
		Tuning:         Hazards,
	}
}
