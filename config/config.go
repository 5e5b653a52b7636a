package config

import (
	"image/color"
	"math"
	"time"
)

// RoundConfig contains phase lengths and simulation cadence
type RoundConfig struct {
	TicksPerSecond int // simulation steps per second

	InstructionsDuration time.Duration
	CountdownDuration    time.Duration
	PlayDuration         time.Duration
	PhaseTickInterval    time.Duration // countdown granularity for every phase
	MotionInterval       time.Duration
	BlockDuration        time.Duration // how long a hazard tap suppresses beneficial spawns
}

// SpawnBracket is one row of the spawn table. It applies while elapsed < Until.
type SpawnBracket struct {
	Until    int // elapsed seconds, exclusive
	Batch    int // harmful entities per spawn tick
	Interval time.Duration
}

// SpawnConfig contains the time-driven spawn table
type SpawnConfig struct {
	Brackets         []SpawnBracket // ordered by Until; the last row should be open-ended
	BeneficialChance float64        // probability of one beneficial per spawn tick
	HazardSeconds    []int          // elapsed seconds at which exactly one hazard drops
}

// ScoringConfig contains the cleanliness bounds and per-event deltas
type ScoringConfig struct {
	Initial float64
	Min     float64
	Max     float64

	// Player taps
	HarmfulTap    float64
	BeneficialTap float64
	HazardTap     float64

	// Reaching the bottom edge
	HarmfulCross    float64
	BeneficialCross float64
	HazardCross     float64
}

// KindConfig contains the randomised spawn ranges for one entity kind
type KindConfig struct {
	Name           string
	Margin         float64 // subtracted from the play-area width when picking x
	StartY         float64 // negative: fully above the visible area
	SpeedMin       float64 // units per second
	SpeedSpread    float64
	RotationSpread float64 // rotation rate is (r-0.5)*RotationSpread degrees per step
	SizeMin        float64
	SizeSpread     float64
	Variants       int // render-only sprite variants
}

// Tuning bundles everything a round session needs. Sessions take a copy.
type Tuning struct {
	Round       RoundConfig
	Spawn       SpawnConfig
	Scoring     ScoringConfig
	Kinds       [KindCount]KindConfig
	TouchMargin float64 // extra hit area around each sprite, per side
}

// EffectsConfig contains transient visual effect settings
type EffectsConfig struct {
	Lifetime        float32 // seconds
	SparkleOffsetY  float64 // sparkles appear this far above the bottom edge
	ExplosionScale  float64
	PopScale        float64
	SparkleScale    float64
	BlockBannerText string
}

// LayoutConfig splits the screen into header, drop zone and teeth strip
type LayoutConfig struct {
	HeaderRatio float64
	DropRatio   float64
	TeethRatio  float64
	TeethCount  int
}

// Tier maps a minimum score to a label and colour
type Tier struct {
	Min      float64
	Label    string
	Subtitle string
	Color    color.RGBA
}

// ResultsConfig contains result screen settings
type ResultsConfig struct {
	AutoReturn  time.Duration
	Grades      []Tier // ordered highest Min first
	TeethShades []Tier
	ScoreColors []Tier
}

// RenderConfig contains the palette for falling entities and effects
type RenderConfig struct {
	Background   color.RGBA
	DropZone     color.RGBA
	KindColors   [KindCount][]color.RGBA // one colour per variant
	EffectColors [EffectCount]color.RGBA
	HitboxColor  color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool  // Skip the attract screen and go straight to instructions
	Trace    bool  // Log every spawn and destroy
	Hitboxes bool  // Outline touch areas
	Seed     int64 // 0 = time based
}

// Global configuration instances
var C *Config
var Round RoundConfig
var Spawn SpawnConfig
var Scoring ScoringConfig
var Kinds [KindCount]KindConfig
var Effects EffectsConfig
var Layout LayoutConfig
var Results ResultsConfig
var Render RenderConfig
var Debug DebugConfig

// TouchMargin is the default per-side hit area padding
var TouchMargin float64

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 102, B: 204, A: 255}
	DarkBlue     = color.RGBA{R: 0, G: 82, B: 163, A: 255}
	SkyBlue      = color.RGBA{R: 186, G: 230, B: 253, A: 255}
	Gum          = color.RGBA{R: 251, G: 207, B: 232, A: 255}
	Charcoal     = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// DefaultTuning returns a copy of the fixed game tuning.
func DefaultTuning() Tuning {
	t := Tuning{
		Round:       Round,
		Spawn:       Spawn,
		Scoring:     Scoring,
		Kinds:       Kinds,
		TouchMargin: TouchMargin,
	}
	// Slices are shared with the globals; sessions must not mutate them.
	t.Spawn.Brackets = append([]SpawnBracket(nil), Spawn.Brackets...)
	t.Spawn.HazardSeconds = append([]int(nil), Spawn.HazardSeconds...)
	return t
}

func init() {
	C = &Config{
		Width:  480,
		Height: 800,
	}

	Round = RoundConfig{
		TicksPerSecond:       60,
		InstructionsDuration: 5 * time.Second,
		CountdownDuration:    3 * time.Second,
		PlayDuration:         60 * time.Second,
		PhaseTickInterval:    time.Second,
		MotionInterval:       time.Second / 60,
		BlockDuration:        5 * time.Second,
	}

	Spawn = SpawnConfig{
		Brackets: []SpawnBracket{
			{Until: 20, Batch: 4, Interval: 1200 * time.Millisecond},
			{Until: 40, Batch: 6, Interval: 900 * time.Millisecond},
			{Until: math.MaxInt, Batch: 7, Interval: 600 * time.Millisecond},
		},
		BeneficialChance: 0.48,
		HazardSeconds:    []int{10, 15, 25, 30, 35, 45, 50, 55},
	}

	Scoring = ScoringConfig{
		Initial: 100,
		Min:     0,
		Max:     100,

		HarmfulTap:    1,
		BeneficialTap: -3,
		HazardTap:     -10,

		HarmfulCross:    -3,
		BeneficialCross: 7,
		HazardCross:     -5,
	}

	Kinds[KindHarmful] = KindConfig{
		Name:           "harmful",
		Margin:         60,
		StartY:         -80,
		SpeedMin:       150,
		SpeedSpread:    100,
		RotationSpread: 5,
		SizeMin:        60,
		SizeSpread:     15,
		Variants:       4, // candy, soda, coffee, chocolate
	}
	Kinds[KindBeneficial] = KindConfig{
		Name:           "beneficial",
		Margin:         80,
		StartY:         -80,
		SpeedMin:       130,
		SpeedSpread:    100,
		RotationSpread: 3,
		SizeMin:        70,
		SizeSpread:     20,
		Variants:       2,
	}
	Kinds[KindHazard] = KindConfig{
		Name:           "hazard",
		Margin:         160,
		StartY:         -160,
		SpeedMin:       250,
		SpeedSpread:    150,
		RotationSpread: 8,
		SizeMin:        140,
		SizeSpread:     20,
		Variants:       1,
	}

	TouchMargin = 20

	Effects = EffectsConfig{
		Lifetime:        1.0,
		SparkleOffsetY:  50,
		ExplosionScale:  2.0,
		PopScale:        1.2,
		SparkleScale:    1.0,
		BlockBannerText: "No toothpaste for 5s!",
	}

	Layout = LayoutConfig{
		HeaderRatio: 0.10,
		DropRatio:   0.70,
		TeethRatio:  0.20,
		TeethCount:  8,
	}

	Results = ResultsConfig{
		AutoReturn: 30 * time.Second,
		Grades: []Tier{
			{Min: 90, Label: "EXCELLENT!", Subtitle: "Perfectly clean!", Color: BrightYellow},
			{Min: 70, Label: "GREAT WORK!", Subtitle: "Very good!", Color: BrightGreen},
			{Min: 50, Label: "GOOD EFFORT!", Subtitle: "Keep going!", Color: SkyBlue},
			{Min: 0, Label: "NICE TRY!", Subtitle: "Practice helps!", Color: Orange},
		},
		TeethShades: []Tier{
			{Min: 80, Label: "Very clean!", Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
			{Min: 60, Label: "Clean", Color: color.RGBA{R: 209, G: 213, B: 219, A: 255}},
			{Min: 40, Label: "Average", Color: color.RGBA{R: 156, G: 163, B: 175, A: 255}},
			{Min: 20, Label: "Dirty", Color: color.RGBA{R: 107, G: 114, B: 128, A: 255}},
			{Min: 0, Label: "Very dirty!", Color: color.RGBA{R: 55, G: 65, B: 81, A: 255}},
		},
		ScoreColors: []Tier{
			{Min: 70, Color: LightGreen},
			{Min: 40, Color: BrightYellow},
			{Min: 0, Color: LightRed},
		},
	}

	Render = RenderConfig{
		Background: Charcoal,
		DropZone:   color.RGBA{R: 30, G: 41, B: 59, A: 255},
		KindColors: [KindCount][]color.RGBA{
			KindHarmful: {
				{R: 132, G: 204, B: 22, A: 255},
				{R: 168, G: 85, B: 247, A: 255},
				{R: 234, G: 179, B: 8, A: 255},
				{R: 239, G: 68, B: 68, A: 255},
			},
			KindBeneficial: {
				{R: 56, G: 189, B: 248, A: 255},
				{R: 240, G: 249, B: 255, A: 255},
			},
			KindHazard: {
				{R: 244, G: 63, B: 94, A: 255},
			},
		},
		EffectColors: [EffectCount]color.RGBA{
			EffectPop:       LightGreen,
			EffectSparkle:   BrightYellow,
			EffectExplosion: BrightOrange,
		},
		HitboxColor: color.RGBA{R: 255, G: 0, B: 255, A: 160},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
