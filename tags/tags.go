package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	PowerUp = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for the arena zone index
const (
	ResolvHazard      = "hazard"
	ResolvGravityWell = "gravity_well"
	ResolvCurrent     = "current"
	ResolvProbe       = "probe"
)
