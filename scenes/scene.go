package scenes

import (
	"github.com/automoto/stickfight/assets"
	cfg "github.com/automoto/stickfight/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is one screen of the host.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Host is what every scene shares: where arenas come from and where the
// last setup is saved.
type Host struct {
	Changer SceneChanger
	Arenas  *assets.ArenaLoader
}

// Arena returns the current data of an arena. Reloaded files show up here on
// the next call.
func (h *Host) Arena(id cfg.ArenaID) *cfg.ArenaConfig {
	return h.Arenas.LoadOrDefault(id)
}

// Describe returns the feature line of an arena for the setup screen.
func (h *Host) Describe(id cfg.ArenaID) string {
	a := h.Arena(id)
	if a.Feature != "" {
		return a.Feature
	}
	return a.Description
}
