package config

import "image/color"

// ThemeID identifies a color palette
type ThemeID int

const (
	ThemeDark ThemeID = iota
	ThemeLight
)

func (t ThemeID) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme maps a stored name back to a theme, defaulting to dark.
func ParseTheme(s string) ThemeID {
	if s == "light" {
		return ThemeLight
	}
	return ThemeDark
}

// Palette holds every color the renderers need for one theme, in straight alpha
type Palette struct {
	Background color.NRGBA
	Nebula     []color.NRGBA
	Star       color.NRGBA
	Title      color.NRGBA
	Text       color.NRGBA
	Muted      color.NRGBA
	Accent     color.NRGBA
	Ship       color.NRGBA
	Flame      color.NRGBA
	Button     color.NRGBA
	ButtonOff  color.NRGBA
	ButtonIcon color.NRGBA
	Progress   color.NRGBA
}

// ThemeConfig contains both palettes and the toggle fade
type ThemeConfig struct {
	Default      ThemeID
	Palettes     map[ThemeID]Palette
	FadeDuration float32 // seconds
	FadeStart    float32 // overlay alpha right after a toggle
}

var Theme ThemeConfig

// CurrentPalette returns the palette for id, falling back to the default.
func CurrentPalette(id ThemeID) Palette {
	if p, ok := Theme.Palettes[id]; ok {
		return p
	}
	return Theme.Palettes[Theme.Default]
}

func init() {
	Theme = ThemeConfig{
		Default:      ThemeDark,
		FadeDuration: 0.3,
		FadeStart:    0.8,
		Palettes: map[ThemeID]Palette{
			ThemeDark: {
				Background: color.NRGBA{R: 8, G: 9, B: 20, A: 255},
				Nebula: []color.NRGBA{
					{R: 60, G: 30, B: 110, A: 40},
					{R: 20, G: 60, B: 120, A: 36},
					{R: 110, G: 30, B: 90, A: 28},
				},
				Star:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
				Title:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
				Text:       color.NRGBA{R: 210, G: 214, B: 230, A: 255},
				Muted:      color.NRGBA{R: 130, G: 136, B: 160, A: 255},
				Accent:     color.NRGBA{R: 99, G: 179, B: 255, A: 255},
				Ship:       color.NRGBA{R: 230, G: 236, B: 255, A: 255},
				Flame:      color.NRGBA{R: 255, G: 150, B: 40, A: 255},
				Button:     color.NRGBA{R: 255, G: 255, B: 255, A: 40},
				ButtonOff:  color.NRGBA{R: 255, G: 255, B: 255, A: 12},
				ButtonIcon: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
				Progress:   color.NRGBA{R: 140, G: 100, B: 255, A: 255},
			},
			ThemeLight: {
				Background: color.NRGBA{R: 236, G: 239, B: 248, A: 255},
				Nebula: []color.NRGBA{
					{R: 160, G: 180, B: 255, A: 50},
					{R: 255, G: 190, B: 220, A: 44},
					{R: 190, G: 240, B: 230, A: 40},
				},
				Star:       color.NRGBA{R: 70, G: 80, B: 120, A: 255},
				Title:      color.NRGBA{R: 20, G: 24, B: 40, A: 255},
				Text:       color.NRGBA{R: 50, G: 56, B: 80, A: 255},
				Muted:      color.NRGBA{R: 110, G: 116, B: 140, A: 255},
				Accent:     color.NRGBA{R: 40, G: 90, B: 220, A: 255},
				Ship:       color.NRGBA{R: 30, G: 40, B: 80, A: 255},
				Flame:      color.NRGBA{R: 230, G: 100, B: 20, A: 255},
				Button:     color.NRGBA{R: 0, G: 0, B: 0, A: 36},
				ButtonOff:  color.NRGBA{R: 0, G: 0, B: 0, A: 12},
				ButtonIcon: color.NRGBA{R: 20, G: 24, B: 40, A: 255},
				Progress:   color.NRGBA{R: 90, G: 60, B: 220, A: 255},
			},
		},
	}
}
