package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/starfolio/config"
	"github.com/quasilyte/gdata"
)

// SavedPreferences is the preference record stored on disk
type SavedPreferences struct {
	Theme string `json:"theme"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPreferences loads preferences from disk. A missing record yields nil.
func LoadPreferences() (*SavedPreferences, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.ThemeKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// Nothing saved yet, use defaults
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize preferences: %w", err)
	}

	if err := gdataManager.SaveItem(cfg.Persistence.ThemeKey, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// savePreferences is the save hook UpdateTheme calls.
var savePreferences = SavePreferences

// SavedTheme returns the stored theme, or the default when nothing is stored.
func SavedTheme() cfg.ThemeID {
	prefs, err := LoadPreferences()
	if err != nil || prefs == nil {
		return cfg.Theme.Default
	}
	return cfg.ParseTheme(prefs.Theme)
}
