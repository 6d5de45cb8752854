package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/match"
	"github.com/automoto/stickfight/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SetupScene lets the players pick the arena and match format
type SetupScene struct {
	host    *Host
	setupUI *ui.SetupUI
	setup   ui.Setup
	once    sync.Once
	start   bool
}

// NewSetupScene creates the setup scene with the last saved choice.
func NewSetupScene(host *Host) *SetupScene {
	arena, bestOf := LoadSetup()
	return &SetupScene{
		host:  host,
		setup: ui.Setup{Arena: arena, BestOf: bestOf},
	}
}

func (ss *SetupScene) Update() {
	ss.once.Do(ss.configure)

	ss.setupUI.Update()

	if ss.start {
		ss.start = false
		ss.startMatch()
	}
}

func (ss *SetupScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.SetupMenu.BackgroundColor)

	if ss.setupUI == nil {
		return
	}
	ss.setupUI.UI.Draw(screen)
}

func (ss *SetupScene) configure() {
	ss.setupUI = ui.NewSetupUI(&ss.setup, ss.host.Describe, func() { ss.start = true })
}

func (ss *SetupScene) startMatch() {
	_ = SaveSetup(ss.setup.Arena, ss.setup.BestOf)

	conf := match.Config{
		Arena:       ss.setup.Arena,
		ArenaConfig: ss.host.Arena(ss.setup.Arena),
		BestOf:      ss.setup.BestOf,
	}
	scene, err := NewFightScene(ss.host, conf)
	if err != nil {
		log.Printf("Warning: could not start match: %v", err)
		return
	}
	ss.host.Changer.ChangeScene(scene)
}
