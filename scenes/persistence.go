package scenes

import (
	"encoding/json"
	"log"
	"slices"

	cfg "github.com/automoto/stickfight/config"
	"github.com/quasilyte/gdata"
)

// SavedSetup is the last match setup, stored on disk between runs
type SavedSetup struct {
	Arena  string `json:"arena"`
	BestOf int    `json:"bestOf"`
}

const setupItem = "setup"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for setup storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "stickfight",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSetup returns the saved setup, or the defaults when nothing usable is
// stored.
func LoadSetup() (cfg.ArenaID, int) {
	arena, bestOf := cfg.ArenaSpaceStation, cfg.Match.DefaultBestOf
	if !gdataInitialized || gdataManager == nil {
		return arena, bestOf
	}

	data, err := gdataManager.LoadItem(setupItem)
	if err != nil {
		log.Printf("Warning: Could not load setup: %v", err)
		return arena, bestOf
	}
	if len(data) == 0 {
		return arena, bestOf
	}

	var saved SavedSetup
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved setup: %v", err)
		return arena, bestOf
	}
	if id, ok := cfg.ParseArenaID(saved.Arena); ok {
		arena = id
	}
	if slices.Contains(cfg.Match.BestOfOptions, saved.BestOf) {
		bestOf = saved.BestOf
	}
	return arena, bestOf
}

// SaveSetup saves the match setup to disk
func SaveSetup(arena cfg.ArenaID, bestOf int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedSetup{Arena: arena.Slug(), BestOf: bestOf})
	if err != nil {
		log.Printf("Warning: Could not serialize setup: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(setupItem, data); err != nil {
		log.Printf("Warning: Could not save setup: %v", err)
		return err
	}
	return nil
}
