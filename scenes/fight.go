package scenes

import (
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/match"
	"github.com/automoto/stickfight/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// FightScene runs a match and draws its snapshot every frame
type FightScene struct {
	host    *Host
	conf    match.Config
	match   *match.Match
	keys    []cfg.Key
	pressed map[cfg.Key]bool
	paused  bool
}

// NewFightScene starts a match with the given configuration.
func NewFightScene(host *Host, conf match.Config) (*FightScene, error) {
	m, err := match.New(conf)
	if err != nil {
		return nil, err
	}
	return &FightScene{
		host:    host,
		conf:    conf,
		match:   m,
		keys:    fighterKeys(),
		pressed: make(map[cfg.Key]bool),
	}, nil
}

func (fs *FightScene) Update() {
	if keyJustPressed(cfg.Input.BackToMenu) {
		fs.host.Changer.ChangeScene(NewSetupScene(fs.host))
		return
	}
	if keyJustPressed(cfg.Input.Pause) {
		fs.paused = !fs.paused
	}
	if fs.paused {
		return
	}

	if res, over := fs.match.Result(); over && keyJustPressed(cfg.Input.Confirm) {
		fs.match.SetArena(fs.host.Arena(fs.conf.Arena))
		if res.MatchOver {
			fs.match.NewMatch()
		} else {
			fs.match.NextRound()
		}
		return
	}

	for _, k := range fs.keys {
		fs.pressed[k] = keyDown(k)
		if keyJustPressed(k) {
			fs.match.RecordKey(k)
		}
	}
	fs.match.Tick(fs.pressed)
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	render.Draw(screen, fs.match.Snapshot(), fs.paused)
}
