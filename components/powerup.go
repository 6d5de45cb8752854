package components

import "github.com/yohamta/donburi"

// PowerUpKind identifies the buff a pickup grants.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpJump
	PowerUpGiant
	PowerUpShield
	PowerUpRapidFire
	PowerUpKindCount // Must be last
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpJump:
		return "jump"
	case PowerUpGiant:
		return "giant"
	case PowerUpShield:
		return "shield"
	case PowerUpRapidFire:
		return "rapidFire"
	}
	return "unknown"
}

// PowerUpData is a pickup waiting on the stage. Pickups never expire while
// uncollected.
type PowerUpData struct {
	X, Y   float64
	Kind   PowerUpKind
	Active bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
