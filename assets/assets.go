package assets

import (
	"embed"
	"io/fs"
	"log"
	"os"
	"sync"

	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/arenadata"
)

// ArenaDir is the directory holding <slug>.tmx and <slug>.yaml pairs, both in
// the embedded filesystem and in an override directory on disk.
const ArenaDir = "arenas"

//go:embed arenas/*.tmx arenas/*.yaml
var arenaFS embed.FS

// ArenaLoader loads and caches arena configurations. When a disk directory is
// set, arenas are read from it instead of the embedded copies.
type ArenaLoader struct {
	fsys fs.FS
	dir  string

	mu    sync.Mutex
	cache map[cfg.ArenaID]*cfg.ArenaConfig
}

// NewArenaLoader returns a loader over the embedded arenas, or over diskDir
// when it is not empty.
func NewArenaLoader(diskDir string) *ArenaLoader {
	l := &ArenaLoader{
		fsys:  arenaFS,
		dir:   ArenaDir,
		cache: make(map[cfg.ArenaID]*cfg.ArenaConfig),
	}
	if diskDir != "" {
		l.fsys = os.DirFS(diskDir)
		l.dir = "."
	}
	return l
}

// Load returns the arena for id, reading it on first use.
func (l *ArenaLoader) Load(id cfg.ArenaID) (*cfg.ArenaConfig, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if arena, ok := l.cache[id]; ok {
		return arena, nil
	}
	arena, err := arenadata.LoadArena(l.fsys, l.dir, id)
	if err != nil {
		return nil, err
	}
	l.cache[id] = arena
	return arena, nil
}

// LoadOrDefault returns the arena for id and falls back to a flat arena
// without hazards when it cannot be loaded.
func (l *ArenaLoader) LoadOrDefault(id cfg.ArenaID) *cfg.ArenaConfig {
	arena, err := l.Load(id)
	if err != nil {
		log.Printf("Warning: %v; using a flat arena", err)
		return cfg.DefaultArena(id)
	}
	return arena
}

// Preload reads every arena so file errors surface at startup.
func (l *ArenaLoader) Preload() error {
	arenas, err := arenadata.LoadAll(l.fsys, l.dir)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, arena := range arenas {
		l.cache[id] = arena
	}
	return nil
}

// Invalidate drops the cache so the next Load rereads the files.
func (l *ArenaLoader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[cfg.ArenaID]*cfg.ArenaConfig)
}

var defaultLoader = NewArenaLoader("")

// Arena returns an embedded arena, falling back to a flat arena on error.
func Arena(id cfg.ArenaID) *cfg.ArenaConfig {
	return defaultLoader.LoadOrDefault(id)
}
