package systems

import (
	"log"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTheme handles the toggle key and control, advances the fade overlay
// and persists a changed choice.
func UpdateTheme(ecs *ecs.ECS) {
	entry, ok := components.Theme.First(ecs.World)
	if !ok {
		return
	}
	theme := components.Theme.Get(entry)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleTheme).JustPressed || ControlClicked(ecs, components.ControlTheme) {
		ToggleTheme(theme)
	}

	if theme.Fade != nil {
		var done bool
		theme.FadeAlpha, done = theme.Fade.Update(float32(1) / float32(cfg.C.TPS))
		if done {
			theme.Fade = nil
			theme.FadeAlpha = 0
		}
	}

	if theme.Dirty {
		theme.Dirty = false
		// One attempt per change; the choice still applies for this session
		if err := savePreferences(&SavedPreferences{Theme: theme.Current.String()}); err != nil {
			log.Printf("Warning: Theme %s not saved: %v", theme.Current, err)
		}
	}
}

// ToggleTheme flips between the dark and light palettes and starts the fade.
func ToggleTheme(theme *components.ThemeData) {
	if theme.Current == cfg.ThemeDark {
		theme.Current = cfg.ThemeLight
	} else {
		theme.Current = cfg.ThemeDark
	}
	theme.Fade = gween.New(cfg.Theme.FadeStart, 0, cfg.Theme.FadeDuration, ease.OutQuad)
	theme.FadeAlpha = cfg.Theme.FadeStart
	theme.Dirty = true
}

// DrawThemeFade covers the screen with the new background color while the
// toggle fade runs.
func DrawThemeFade(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Theme.First(ecs.World)
	if !ok {
		return
	}
	theme := components.Theme.Get(entry)
	if theme.FadeAlpha <= 0 {
		return
	}
	b := screen.Bounds()
	c := withAlpha(cfg.CurrentPalette(theme.Current).Background, theme.FadeAlpha)
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

func currentTheme(ecs *ecs.ECS) cfg.ThemeID {
	entry, ok := components.Theme.First(ecs.World)
	if !ok {
		return cfg.Theme.Default
	}
	return components.Theme.Get(entry).Current
}
