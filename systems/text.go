package systems

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTexts floats the queued texts upward and drops the expired ones.
func UpdateTexts(e *ecs.ECS) {
	if !roundRunning(e) {
		return
	}
	if sim := getSimulation(e); sim != nil {
		sim.Texts = AgeTexts(sim.Texts)
	}
}

// AgeTexts advances every text by a frame in place.
func AgeTexts(texts []components.FloatingText) []components.FloatingText {
	kept := texts[:0]
	for _, t := range texts {
		t.Y -= cfg.Text.RisePerFrame
		t.Lifetime--
		if t.Lifetime > 0 {
			kept = append(kept, t)
		}
	}
	return kept
}
