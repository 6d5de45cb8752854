package components

import (
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi"
)

// ShapeKind tells the renderer how to draw a hazard shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
	ShapeLine
	ShapeZone
)

// HazardShape is a read-only view of one live hazard actor or region.
type HazardShape struct {
	Kind    ShapeKind
	Label   string
	X, Y    float64
	X2, Y2  float64 // Line end, or width and height for rects and zones
	Size    float64
	Warning bool
	Active  bool
}

// ArenaEffects is the hazard engine of one arena. Implementations keep their
// runtime state statically typed; the rest of the simulation only sees this
// capability.
type ArenaEffects interface {
	// Initialize resets the runtime state for a new round.
	Initialize(sim *SimulationData)
	// Update advances every hazard one frame. It may damage, push and afflict
	// both fighters and append floating texts.
	Update(sim *SimulationData, players [2]PlayerData) [2]PlayerData
	// ApplyToPlayer is the per-fighter hook run near the end of a fighter's
	// step.
	ApplyToPlayer(p PlayerData, sim *SimulationData) PlayerData
	// PlatformSolid reports whether the platform at slice index i currently
	// supports fighters.
	PlatformSolid(i int) bool
	// HazardDamage sums the damage of the static hazards a fighter touches.
	HazardDamage(p PlayerData) float64
	// Shapes lists the live hazards for drawing.
	Shapes() []HazardShape
}

// ArenaData is the singleton holding the selected arena and its hazard
// engine.
type ArenaData struct {
	Config  *cfg.ArenaConfig
	Effects ArenaEffects
}

var Arena = donburi.NewComponentType[ArenaData]()
