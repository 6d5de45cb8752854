package config

import "image/color"

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// StageConfig describes the fixed play field every arena shares.
type StageConfig struct {
	Width   float64
	Height  float64
	GroundY float64 // Feet of a grounded fighter rest on this line

	// Fighter collision box. Fighter x is the horizontal center, y is the feet.
	PlayerWidth  float64
	PlayerHeight float64
	GiantWidth   float64 // Width while the giant buff is active

	// Spawn points
	P1SpawnX float64
	P2SpawnX float64
}

// PhysicsConfig holds the base movement constants. Arenas scale gravity,
// friction and jump force on top of these.
type PhysicsConfig struct {
	Gravity   float64
	JumpForce float64
	MoveSpeed float64

	SpeedBoostMultiplier float64
	SuperJumpMultiplier  float64

	// Vertical tolerance when snapping onto a platform top
	LandingTolerance float64
	JumpSquashFrames int
	LandSquashFrames int
}

// CombatConfig holds hit resolution constants.
type CombatConfig struct {
	MaxHealth float64

	ContactFrame      int // Remaining attack frames at which the hit test runs
	ComboAttackFrames int
	PunchFrames       int
	KickFrames        int

	RapidPunchCooldown int
	RapidKickCooldown  int

	GiantDamageMultiplier float64
	GiantReachBonus       float64

	ComboStep          float64 // Multiplier gained per combo count
	MaxComboMultiplier float64
	ComboDecayFrames   int // Combo resets when no attack lands within this many frames

	KnockbackScale     float64
	UppercutLift       float64
	HitLift            float64
	HitStunFrames      int
	StaticHazardPeriod int // Static hazards bite once per this many frames
	StaticHazardStun   int

	// Vertical alignment windows, measured as attacker.y - defender.y
	UppercutMinOffset float64
	UppercutMaxOffset float64
	SlamMaxOffset     float64

	BurnPeriod int // Burning deals 1 damage once per this many frames
}

// ComboConfig controls the input recognizer.
type ComboConfig struct {
	Window          int // Frames a key stays "recent"
	TripleWindowMul int // Extended lookback for triple-tap detection, in windows
	HistoryFrames   int // Host drops history entries older than this
	MinKeys         int
}

// PowerUpConfig controls pickup spawning and buff duration.
type PowerUpConfig struct {
	SpawnChance       float64
	Duration          int
	Size              float64
	CaptureRadius     float64
	MarginX           float64 // Spawn x is kept this far from either edge
	HeightAboveGround float64
}

// TextConfig holds floating text lifetimes.
type TextConfig struct {
	DamageLifetime int
	ComboLifetime  int
	BannerLifetime int
	RisePerFrame   float64
}

// MatchConfig holds best-of options.
type MatchConfig struct {
	BestOfOptions []int
	DefaultBestOf int
	RNGSeed       uint64 // Zero means seed from the clock

	VictoryPoseFrames int
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// PaletteConfig contains the colors the renderer uses for fighters and HUD.
type PaletteConfig struct {
	Player1    color.RGBA
	Player2    color.RGBA
	Health     color.RGBA
	HealthLow  color.RGBA
	HealthBack color.RGBA
	Text       color.RGBA
	Banner     color.RGBA
	Shield     color.RGBA
	Warning    color.RGBA
	Overlay    color.RGBA
}

var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	Blue        = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	Green       = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Yellow      = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	Orange      = color.RGBA{R: 249, G: 115, B: 22, A: 255}
	Cyan        = color.RGBA{R: 34, G: 211, B: 238, A: 255}
	DarkGray    = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	BlackShadow = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

var (
	Stage   StageConfig
	Physics PhysicsConfig
	Combat  CombatConfig
	Combo   ComboConfig
	PowerUp PowerUpConfig
	Text    TextConfig
	Match   MatchConfig
	Window  WindowConfig
	Palette PaletteConfig
)

func init() {
	Stage = StageConfig{
		Width:        1200,
		Height:       600,
		GroundY:      550,
		PlayerWidth:  30,
		PlayerHeight: 80,
		GiantWidth:   45,
		P1SpawnX:     300,
		P2SpawnX:     900,
	}

	Physics = PhysicsConfig{
		Gravity:              0.5,
		JumpForce:            12,
		MoveSpeed:            5,
		SpeedBoostMultiplier: 1.7,
		SuperJumpMultiplier:  1.5,
		LandingTolerance:     5,
		JumpSquashFrames:     10,
		LandSquashFrames:     5,
	}

	Combat = CombatConfig{
		MaxHealth:          100,
		ContactFrame:       5,
		ComboAttackFrames:  15,
		PunchFrames:        10,
		KickFrames:         12,
		RapidPunchCooldown: 10,
		RapidKickCooldown:  12,

		GiantDamageMultiplier: 1.5,
		GiantReachBonus:       20,

		ComboStep:          0.1,
		MaxComboMultiplier: 2.0,
		ComboDecayFrames:   120,

		KnockbackScale:     0.2,
		UppercutLift:       -8,
		HitLift:            -5,
		HitStunFrames:      15,
		StaticHazardPeriod: 30,
		StaticHazardStun:   5,

		UppercutMinOffset: -80,
		UppercutMaxOffset: 0,
		SlamMaxOffset:     60,

		BurnPeriod: 30,
	}

	Combo = ComboConfig{
		Window:          20,
		TripleWindowMul: 3,
		HistoryFrames:   40,
		MinKeys:         2,
	}

	PowerUp = PowerUpConfig{
		SpawnChance:       0.005,
		Duration:          300,
		Size:              25,
		CaptureRadius:     30,
		MarginX:           50,
		HeightAboveGround: 30,
	}

	Text = TextConfig{
		DamageLifetime: 30,
		ComboLifetime:  45,
		BannerLifetime: 60,
		RisePerFrame:   1,
	}

	Match = MatchConfig{
		BestOfOptions: []int{1, 3, 5, 7},
		DefaultBestOf: 3,

		VictoryPoseFrames: 120,
	}

	Window = WindowConfig{
		Title:  "Stickfight",
		Width:  1200,
		Height: 600,
		TPS:    60,
	}

	Palette = PaletteConfig{
		Player1:    Red,
		Player2:    Blue,
		Health:     Green,
		HealthLow:  Red,
		HealthBack: DarkGray,
		Text:       White,
		Banner:     Yellow,
		Shield:     Cyan,
		Warning:    Orange,
		Overlay:    BlackShadow,
	}
}
