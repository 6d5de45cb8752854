package scenes

import (
	cfg "github.com/automoto/stickfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenKeys maps the logical keys the simulation knows to physical keys.
var ebitenKeys = map[cfg.Key]ebiten.Key{
	cfg.KeyA:          ebiten.KeyA,
	cfg.KeyD:          ebiten.KeyD,
	cfg.KeyW:          ebiten.KeyW,
	cfg.KeyS:          ebiten.KeyS,
	cfg.KeyF:          ebiten.KeyF,
	cfg.KeyE:          ebiten.KeyE,
	cfg.KeyArrowLeft:  ebiten.KeyArrowLeft,
	cfg.KeyArrowRight: ebiten.KeyArrowRight,
	cfg.KeyArrowUp:    ebiten.KeyArrowUp,
	cfg.KeyArrowDown:  ebiten.KeyArrowDown,
	cfg.KeySlash:      ebiten.KeySlash,
	cfg.KeyPeriod:     ebiten.KeyPeriod,
	cfg.KeyEscape:     ebiten.KeyEscape,
	cfg.KeyEnter:      ebiten.KeyEnter,
	cfg.KeyBackspace:  ebiten.KeyBackspace,
}

func keyDown(k cfg.Key) bool {
	ek, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

func keyJustPressed(k cfg.Key) bool {
	ek, ok := ebitenKeys[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

// fighterKeys lists every bound fighter key, player 1 first and in action
// order, so presses are recorded in a stable order.
func fighterKeys() []cfg.Key {
	var keys []cfg.Key
	for _, b := range cfg.Input.Players {
		for a := cfg.ActionMoveLeft; a < cfg.ActionCount; a++ {
			if k := b.Key(a); k != "" {
				keys = append(keys, k)
			}
		}
	}
	return keys
}
