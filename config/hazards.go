package config

// SpawnTuning drives a countdown spawner. The countdown starts at First and
// is reset to Interval + rand[0, Jitter) after every spawn.
type SpawnTuning struct {
	First    int `yaml:"first"`
	Interval int `yaml:"interval"`
	Jitter   int `yaml:"jitter"`
	Warning  int `yaml:"warning"` // Telegraph frames before the hazard is dangerous
}

// HitTuning describes what a hazard does to a fighter it touches.
type HitTuning struct {
	Damage float64 `yaml:"damage"`
	Period int     `yaml:"period"` // Damage lands only when frame%Period == 0; 0 means every contact
	Stun   int     `yaml:"stun"`   // Hit reaction frames
	Status int     `yaml:"status"` // Status effect frames, the effect depends on the hazard
	Reach  float64 `yaml:"reach"`  // Contact distance added to the hazard's own size
}

type GravityWellTuning struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

type AsteroidTuning struct {
	Spawn  SpawnTuning `yaml:"spawn"`
	Hit    HitTuning   `yaml:"hit"`
	Bounce float64     `yaml:"bounce"` // Asteroid velocity factor after touching a fighter
	Push   float64     `yaml:"push"`   // Share of the bounced velocity given to the fighter
}

type IcicleTuning struct {
	Spawn SpawnTuning `yaml:"spawn"`
	Hit   HitTuning   `yaml:"hit"`
}

type IceTuning struct {
	SlipChance   float64 `yaml:"slip_chance"`
	SlipDrag     float64 `yaml:"slip_drag"`
	FrozenDrag   float64 `yaml:"frozen_drag"`
	Shake        float64 `yaml:"shake"`
	WearFrames   int     `yaml:"wear_frames"`   // Occupied frames per strength point lost
	BrokenFrames int     `yaml:"broken_frames"` // Frames a broken platform stays gone
}

type MeteorTuning struct {
	Spawn SpawnTuning `yaml:"spawn"`
	Hit   HitTuning   `yaml:"hit"`
}

type EruptionTuning struct {
	Duration           int `yaml:"duration"`
	Interval           int `yaml:"interval"`
	Jitter             int `yaml:"jitter"`
	FirstJitter        int `yaml:"first_jitter"`
	MeteorsPerEruption int `yaml:"meteors"`
}

type LavaSurgeTuning struct {
	First     int       `yaml:"first"`
	Duration  int       `yaml:"duration"`
	Interval  int       `yaml:"interval"`
	Jitter    int       `yaml:"jitter"`
	MaxHeight float64   `yaml:"max_height"`
	BaseLine  float64   `yaml:"base_line"` // Lava top when the surge is flat
	Hit       HitTuning `yaml:"hit"`
}

type ArcTuning struct {
	Spawn       SpawnTuning `yaml:"spawn"`
	Hit         HitTuning   `yaml:"hit"`
	Lifetime    int         `yaml:"lifetime"`
	LifeJitter  int         `yaml:"life_jitter"`
	DangerAbove int         `yaml:"danger_above"` // Arcs hurt only while lifetime is above this
	StunnedDrag float64     `yaml:"stunned_drag"`
}

type DroneTuning struct {
	Count      int     `yaml:"count"`
	FireChance float64 `yaml:"fire_chance"`
	TurnChance float64 `yaml:"turn_chance"`
	MinX       float64 `yaml:"min_x"`
	MaxX       float64 `yaml:"max_x"`
	MinY       float64 `yaml:"min_y"`
	MaxY       float64 `yaml:"max_y"`
}

type JellyfishTuning struct {
	Spawn SpawnTuning `yaml:"spawn"`
	Hit   HitTuning   `yaml:"hit"`
}

type OxygenTuning struct {
	Capacity   int       `yaml:"capacity"`
	LowWarning int       `yaml:"low_warning"`
	Hit        HitTuning `yaml:"hit"`
}

type WaterTuning struct {
	Drag         float64 `yaml:"drag"`
	PoisonDamage float64 `yaml:"poison_damage"`
	PoisonPeriod int     `yaml:"poison_period"`
}

type GhostTuning struct {
	Count         int     `yaml:"count"`
	CaptureFrames int     `yaml:"capture_frames"`
	SeekChance    float64 `yaml:"seek_chance"`
	TurnChance    float64 `yaml:"turn_chance"`
	Reach         float64 `yaml:"reach"`
}

type PossessionTuning struct {
	MoveChance  float64 `yaml:"move_chance"`
	JumpChance  float64 `yaml:"jump_chance"`
	PunchChance float64 `yaml:"punch_chance"`
	MaxSpeed    float64 `yaml:"max_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

type PlatformToggleTuning struct {
	Spawn    SpawnTuning `yaml:"spawn"`
	MaxFlips int         `yaml:"max_flips"`
}

// HazardTuning holds the tunables of every hazard kind. Each arena only reads
// the sections it uses; its YAML file overrides the defaults below.
type HazardTuning struct {
	GravityWells   GravityWellTuning    `yaml:"gravity_wells"`
	Asteroids      AsteroidTuning       `yaml:"asteroids"`
	Icicles        IcicleTuning         `yaml:"icicles"`
	Ice            IceTuning            `yaml:"ice"`
	Meteors        MeteorTuning         `yaml:"meteors"`
	Eruptions      EruptionTuning       `yaml:"eruptions"`
	LavaSurge      LavaSurgeTuning      `yaml:"lava_surge"`
	Arcs           ArcTuning            `yaml:"arcs"`
	Drones         DroneTuning          `yaml:"drones"`
	Jellyfish      JellyfishTuning      `yaml:"jellyfish"`
	Oxygen         OxygenTuning         `yaml:"oxygen"`
	Water          WaterTuning          `yaml:"water"`
	Ghosts         GhostTuning          `yaml:"ghosts"`
	Possession     PossessionTuning     `yaml:"possession"`
	PlatformToggle PlatformToggleTuning `yaml:"platform_toggle"`
}

// Hazards holds the default tuning.
var Hazards HazardTuning

func init() {
	Hazards = HazardTuning{
		GravityWells: GravityWellTuning{Amplitude: 0.2, Frequency: 0.01},
		Asteroids: AsteroidTuning{
			Spawn:  SpawnTuning{First: 120, Interval: 60, Jitter: 120},
			Hit:    HitTuning{Damage: 5, Period: 10, Stun: 10, Reach: 20},
			Bounce: 0.8,
			Push:   0.5,
		},
		Icicles: IcicleTuning{
			Spawn: SpawnTuning{First: 60, Interval: 60, Jitter: 120, Warning: 30},
			Hit:   HitTuning{Damage: 10, Stun: 10, Status: 60, Reach: 20},
		},
		Ice: IceTuning{
			SlipChance:   0.02,
			SlipDrag:     0.99,
			FrozenDrag:   0.8,
			Shake:        0.2,
			WearFrames:   60,
			BrokenFrames: 300,
		},
		Meteors: MeteorTuning{
			Spawn: SpawnTuning{First: 120, Interval: 90, Jitter: 120, Warning: 30},
			Hit:   HitTuning{Damage: 15, Stun: 15, Status: 90, Reach: 20},
		},
		Eruptions: EruptionTuning{
			Duration:           90,
			Interval:           300,
			Jitter:             300,
			FirstJitter:        120,
			MeteorsPerEruption: 3,
		},
		LavaSurge: LavaSurgeTuning{
			First:     300,
			Duration:  180,
			Interval:  300,
			Jitter:    300,
			MaxHeight: 80,
			BaseLine:  580,
			Hit:       HitTuning{Damage: 5, Period: 15, Status: 60},
		},
		Arcs: ArcTuning{
			Spawn:       SpawnTuning{First: 60, Interval: 120, Jitter: 180, Warning: 30},
			Hit:         HitTuning{Damage: 8, Period: 10, Stun: 10, Status: 30, Reach: 30},
			Lifetime:    20,
			LifeJitter:  20,
			DangerAbove: 10,
			StunnedDrag: 0.7,
		},
		Drones: DroneTuning{
			Count:      5,
			FireChance: 0.005,
			TurnChance: 0.01,
			MinX:       50,
			MaxX:       1150,
			MinY:       50,
			MaxY:       400,
		},
		Jellyfish: JellyfishTuning{
			Spawn: SpawnTuning{First: 120, Interval: 180, Jitter: 120},
			Hit:   HitTuning{Damage: 5, Period: 30, Status: 120, Reach: 20},
		},
		Oxygen: OxygenTuning{
			Capacity:   600,
			LowWarning: 180,
			Hit:        HitTuning{Damage: 5, Period: 30},
		},
		Water: WaterTuning{Drag: 0.95, PoisonDamage: 1, PoisonPeriod: 60},
		Ghosts: GhostTuning{
			Count:         5,
			CaptureFrames: 180,
			SeekChance:    0.05,
			TurnChance:    0.01,
			Reach:         20,
		},
		Possession: PossessionTuning{
			MoveChance:  0.1,
			JumpChance:  0.05,
			PunchChance: 0.05,
			MaxSpeed:    5,
			JumpImpulse: -10,
		},
		PlatformToggle: PlatformToggleTuning{
			Spawn:    SpawnTuning{First: 180, Interval: 180, Jitter: 120},
			MaxFlips: 2,
		},
	}
}
