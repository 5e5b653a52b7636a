package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/toothfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the display settings stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. Nil means nothing was saved yet or
// persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeSettings(data)
}

// DecodeSettings parses stored settings and clamps the resolution index.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySettings pushes saved display settings to the window.
func ApplySettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)

	// Window size only matters when not fullscreen
	if !saved.Fullscreen {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// ToggleFullscreen flips fullscreen and persists the choice.
func ToggleFullscreen(saved *SavedSettings) {
	if saved == nil {
		return
	}
	saved.Fullscreen = !saved.Fullscreen
	ApplySettings(saved)
	_ = SaveSettings(saved)
}

// CycleResolution moves to the next window size and persists it.
func CycleResolution(saved *SavedSettings) {
	if saved == nil || len(cfg.Settings.Resolutions) == 0 {
		return
	}
	saved.ResolutionIndex = (saved.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
	ApplySettings(saved)
	_ = SaveSettings(saved)
}
