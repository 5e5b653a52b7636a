package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains persisted display settings defaults
type SettingsConfig struct {
	AppName                string
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "toothfall",
		Resolutions: []Resolution{
			{Width: 480, Height: 800, Label: "480 x 800"},
			{Width: 600, Height: 1000, Label: "600 x 1000"},
			{Width: 720, Height: 1200, Label: "720 x 1200"},
		},
		DefaultResolutionIndex: 0,
	}
}
