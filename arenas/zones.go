package arenas

import (
	"sort"

	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/gamemath"
	"github.com/automoto/stickfight/tags"
	"github.com/solarlune/resolv"
)

// zoneIndex holds the arena's static rectangles in a resolv space. Queries
// move a probe object, collect the broadphase candidates and then run the
// exact strict-inequality test against the authored rectangle.
type zoneIndex struct {
	space   *resolv.Space
	probe   *resolv.Object
	hazards []cfg.HazardZoneConfig
	zones   []cfg.ZoneConfig
}

func zoneTag(kind cfg.ZoneKind) string {
	switch kind {
	case cfg.ZoneGravityWell:
		return tags.ResolvGravityWell
	case cfg.ZoneCurrent:
		return tags.ResolvCurrent
	}
	return ""
}

func newZoneIndex(arena *cfg.ArenaConfig) *zoneIndex {
	// Hazard tests look below the feet, so the space extends one body height
	// under the stage.
	w := int(cfg.Stage.Width)
	h := int(cfg.Stage.Height + cfg.Stage.PlayerHeight)
	space := resolv.NewSpace(w, h, 16, 16)

	for i, hz := range arena.Hazards {
		obj := resolv.NewObject(hz.X, hz.Y, hz.Width, hz.Height, tags.ResolvHazard)
		obj.SetShape(resolv.NewRectangle(0, 0, hz.Width, hz.Height))
		obj.Data = i
		space.Add(obj)
	}
	for i, z := range arena.Zones {
		tag := zoneTag(z.Kind)
		if tag == "" {
			continue
		}
		obj := resolv.NewObject(z.X, z.Y, z.Width, z.Height, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, z.Width, z.Height))
		obj.Data = i
		space.Add(obj)
	}

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)

	return &zoneIndex{
		space:   space,
		probe:   probe,
		hazards: arena.Hazards,
		zones:   arena.Zones,
	}
}

// candidates returns the authoring indices of tagged objects sharing a cell
// with the rectangle, in ascending order. The probe is padded by a pixel so
// sub-pixel overlaps at cell borders are not lost.
func (z *zoneIndex) candidates(x, y, w, h float64, tag string) []int {
	z.probe.X, z.probe.Y = x-1, y-1
	z.probe.W, z.probe.H = w+2, h+2
	z.probe.Update()

	check := z.probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	seen := make(map[int]bool)
	var out []int
	for _, obj := range check.ObjectsByTags(tag) {
		i, ok := obj.Data.(int)
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// hazardDamage sums the damage of every static hazard overlapping the body
// hanging below the feet at (x, y).
func (z *zoneIndex) hazardDamage(x, y float64) float64 {
	if len(z.hazards) == 0 {
		return 0
	}
	pw := cfg.Stage.PlayerWidth
	ph := cfg.Stage.PlayerHeight

	var damage float64
	for _, i := range z.candidates(x-pw/2, y, pw, ph, tags.ResolvHazard) {
		hz := z.hazards[i]
		if x > hz.X-pw/2 && x < hz.X+hz.Width+pw/2 && y > hz.Y-ph && y < hz.Y+hz.Height {
			damage += hz.Damage
		}
	}
	return damage
}

// zonesAt returns the zones of one kind that strictly contain the point.
func (z *zoneIndex) zonesAt(x, y float64, kind cfg.ZoneKind) []cfg.ZoneConfig {
	tag := zoneTag(kind)
	if tag == "" {
		return nil
	}
	var out []cfg.ZoneConfig
	for _, i := range z.candidates(x, y, 1, 1, tag) {
		zone := z.zones[i]
		if gamemath.InRectStrict(x, y, zone.X, zone.Y, zone.Width, zone.Height) {
			out = append(out, zone)
		}
	}
	return out
}
