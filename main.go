package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/stickfight/assets"
	"github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/fonts"
	"github.com/automoto/stickfight/scenes"
	"github.com/automoto/stickfight/shared/arenadata"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var arenaDir = flag.String("arena-dir", "", "load arena files from this directory and reload them when they change")

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(loader *assets.ArenaLoader) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	host := &scenes.Host{Changer: g, Arenas: loader}
	g.scene = scenes.NewSetupScene(host)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Window.Width, config.Window.Height)
	return config.Window.Width, config.Window.Height
}

func loadFonts() error {
	for _, f := range []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.HUD, goregular.TTF, 16},
		{fonts.Small, goregular.TTF, 12},
		{fonts.Banner, gobold.TTF, 36},
		{fonts.Title, gobold.TTF, 28},
	} {
		if err := fonts.LoadFont(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

// watchArenas drops the cached arenas whenever a file in dir changes. The
// next round picks up the new data.
func watchArenas(dir string, loader *assets.ArenaLoader) (*arenadata.Watcher, error) {
	w, err := arenadata.NewWatcher(dir)
	if err != nil {
		return nil, err
	}
	go func() {
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				loader.Invalidate()
				if err := loader.Preload(); err != nil {
					log.Printf("Warning: reload after %s failed: %v", name, err)
					continue
				}
				log.Printf("Reloaded arenas after change to %s", name)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: arena watcher: %v", err)
			}
		}
	}()
	return w, nil
}

func main() {
	flag.Parse()

	loader := assets.NewArenaLoader(*arenaDir)
	if err := loader.Preload(); err != nil {
		log.Fatalf("Failed to load arenas: %v", err)
	}
	if *arenaDir != "" {
		w, err := watchArenas(*arenaDir, loader)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", *arenaDir, err)
		}
		defer w.Close()
	}

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if err := scenes.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetTPS(config.Window.TPS)

	if err := ebiten.RunGame(NewGame(loader)); err != nil {
		log.Fatal(err)
	}
}
