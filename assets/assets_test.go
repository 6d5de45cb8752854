package assets

import (
	"testing"

	cfg "github.com/automoto/stickfight/config"
)

func TestEmbeddedArenasLoad(t *testing.T) {
	l := NewArenaLoader("")
	if err := l.Preload(); err != nil {
		t.Fatalf("Preload() error = %v", err)
	}

	tests := []struct {
		id        cfg.ArenaID
		platforms int
		hazards   int
		zones     int
		gravity   float64
	}{
		{cfg.ArenaSpaceStation, 6, 0, 3, 0.1},
		{cfg.ArenaIceCave, 5, 5, 0, 0.5},
		{cfg.ArenaVolcano, 5, 3, 2, 0.5},
		{cfg.ArenaNeonCity, 7, 0, 0, 0.5},
		{cfg.ArenaUnderwater, 7, 0, 3, 0.3},
		{cfg.ArenaHaunted, 7, 0, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.id.Slug(), func(t *testing.T) {
			a, err := l.Load(tt.id)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if a.Name != tt.id.String() {
				t.Errorf("Name = %q, want %q", a.Name, tt.id.String())
			}
			if len(a.Platforms) != tt.platforms {
				t.Errorf("platforms = %d, want %d", len(a.Platforms), tt.platforms)
			}
			if len(a.Hazards) != tt.hazards {
				t.Errorf("hazards = %d, want %d", len(a.Hazards), tt.hazards)
			}
			if len(a.Zones) != tt.zones {
				t.Errorf("zones = %d, want %d", len(a.Zones), tt.zones)
			}
			if a.Gravity != tt.gravity {
				t.Errorf("Gravity = %v, want %v", a.Gravity, tt.gravity)
			}
		})
	}
}

func TestNeonCityMovingPlatforms(t *testing.T) {
	a := Arena(cfg.ArenaNeonCity)
	var moving int
	for _, p := range a.Platforms {
		if p.Moving {
			moving++
			if p.Speed != 1 || p.Range != 200 || p.StartX != p.X {
				t.Errorf("moving platform %d = %+v", p.ID, p)
			}
		}
	}
	if moving != 2 {
		t.Errorf("moving platforms = %d, want 2", moving)
	}
}

func TestInvalidArenaFallsBack(t *testing.T) {
	a := Arena(cfg.ArenaCount)
	if len(a.Platforms) != 0 || len(a.Hazards) != 0 {
		t.Errorf("fallback arena should be flat, got %+v", a)
	}
}
