package config

import (
	"image/color"
	"time"

	"github.com/automoto/starfolio/shared/navigation"
	"github.com/automoto/starfolio/shared/starfield"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // logic ticks per second, used to convert durations to ticks
}

// ViewportConfig controls how viewport changes are applied
type ViewportConfig struct {
	ResizeDebounceTicks int // ~250ms at 60 TPS
}

// BackgroundConfig describes the half-speed nebula layer behind the content
type BackgroundConfig struct {
	BlobCount     int
	BlobRadiusMin float64
	BlobRadiusMax float64
	Seed          int64
}

// ShipConfig contains the marker sprite dimensions
type ShipConfig struct {
	Length    float64
	Width     float64
	FlameSize float64
}

// ControlsConfig lays out the on-screen controls
type ControlsConfig struct {
	ButtonSize    float64
	Margin        float64
	IconSize      float64 // theme/audio/contact buttons on the top right
	IconSpacing   float64
	SpaceCellSize int
}

// RevealConfig drives the scroll-triggered section fade in
type RevealConfig struct {
	Threshold float64 // fraction of a section that must be on screen
	Duration  float32 // seconds
	OffsetY   float32 // starting vertical offset in pixels
}

// TypewriterConfig controls the hero subtitle effect
type TypewriterConfig struct {
	Delay    time.Duration
	Interval time.Duration
}

// HUDConfig contains progress bar and hint settings
type HUDConfig struct {
	ProgressHeight float64
	ActiveLead     float64 // pixels past the left edge that still count as the active section
	ShowHints      bool
}

// SectionConfig contains section layout values
type SectionConfig struct {
	PaddingX     float64
	TitleY       float64 // fraction of viewport height
	LineSpacing  float64
	MaxLineChars int
}

// CursorConfig controls the desktop cursor follower
type CursorConfig struct {
	Radius   float64
	Duration float32 // seconds to catch up with the mouse
	MinWidth float64 // hidden below this viewport width
}

// ContactConfig configures the contact form submission
type ContactConfig struct {
	Endpoint string // empty endpoint only logs submissions
	Timeout  time.Duration
}

// PersistenceConfig names the local preference store
type PersistenceConfig struct {
	AppName  string
	ThemeKey string
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Enabled bool // draw control hitboxes and navigation state
}

// Global configuration instances
var C *Config
var Viewport ViewportConfig
var Navigation navigation.Config
var StarField starfield.Config
var Background BackgroundConfig
var Ship ShipConfig
var Controls ControlsConfig
var Reveal RevealConfig
var Typewriter TypewriterConfig
var HUD HUDConfig
var Section SectionConfig
var Cursor CursorConfig
var Contact ContactConfig
var Persistence PersistenceConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Ticks converts a duration into logic ticks, at least one.
func Ticks(d time.Duration) int {
	t := int(d.Seconds() * float64(C.TPS))
	if t < 1 {
		return 1
	}
	return t
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Starfolio",
		TPS:    60,
	}

	Viewport = ViewportConfig{
		ResizeDebounceTicks: 15,
	}

	Navigation = navigation.Config{
		StartX: 5,
		StartY: 45,
		MinX:   5,
		MaxX:   90,
		MinY:   10,
		MaxY:   85,

		MoveSpeed:         0.8, // percent of viewport per frame
		MobileScrollSpeed: 1.5,

		MobileBreakpoint:     768,
		ContentWidthMultiple: 6, // six sections, one viewport each

		SwipeThreshold:  10,
		SwipeMultiplier: 2,

		BackgroundParallax: 0.5,
	}

	StarField = starfield.Config{
		Margin:            50,
		OpacityMin:        0.3,
		OpacityMax:        1.0,
		InitialOpacityMin: 0.5,
		GlowThreshold:     1.5,
		GlowScale:         2,
		GlowAlpha:         0.3,
		Layers: []starfield.LayerConfig{
			// Nearest layer moves fastest
			{Count: 150, Speed: 0.8, SizeMin: 1, SizeMax: 3, TwinkleSpeed: 0.02, Parallax: 1.2},
			{Count: 100, Speed: 0.5, SizeMin: 0.8, SizeMax: 2, TwinkleSpeed: 0.015, Parallax: 0.8},
			{Count: 80, Speed: 0.3, SizeMin: 0.5, SizeMax: 1.5, TwinkleSpeed: 0.01, Parallax: 0.5},
		},
	}

	Background = BackgroundConfig{
		BlobCount:     14,
		BlobRadiusMin: 80,
		BlobRadiusMax: 220,
		Seed:          7,
	}

	Ship = ShipConfig{
		Length:    34,
		Width:     22,
		FlameSize: 8,
	}

	Controls = ControlsConfig{
		ButtonSize:    56,
		Margin:        24,
		IconSize:      36,
		IconSpacing:   12,
		SpaceCellSize: 16,
	}

	Reveal = RevealConfig{
		Threshold: 0.15,
		Duration:  0.8,
		OffsetY:   30,
	}

	Typewriter = TypewriterConfig{
		Delay:    500 * time.Millisecond,
		Interval: 100 * time.Millisecond,
	}

	HUD = HUDConfig{
		ProgressHeight: 4,
		ActiveLead:     200,
		ShowHints:      true,
	}

	Section = SectionConfig{
		PaddingX:     0.12,
		TitleY:       0.3,
		LineSpacing:  1.6,
		MaxLineChars: 64,
	}

	Cursor = CursorConfig{
		Radius:   10,
		Duration: 0.3,
		MinWidth: 1024,
	}

	Contact = ContactConfig{
		Endpoint: "",
		Timeout:  5 * time.Second,
	}

	Persistence = PersistenceConfig{
		AppName:  "starfolio",
		ThemeKey: "theme",
	}
}
