package systems

import (
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/fonts"
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/automoto/starfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 12

// ScrollProgress returns scroll / max, or 0 when nothing can scroll.
func ScrollProgress(engine *navigation.Engine) float64 {
	limit := engine.MaxScrollOffset()
	if limit <= 0 {
		return 0
	}
	return engine.ScrollOffset() / limit
}

// ActiveSectionTitle returns the title of the section the viewport is on.
func ActiveSectionTitle(ecs *ecs.ECS) string {
	navEntry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return ""
	}
	engine := components.Navigation.Get(navEntry).Engine
	w, _ := engine.Viewport()

	titles := map[int]string{}
	tags.Section.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Section.Get(e)
		titles[s.Index] = s.Title
	})
	return titles[ActiveSection(engine.ScrollOffset(), w, cfg.HUD.ActiveLead, len(titles))]
}

// DrawHUD renders the scroll progress bar, the active section title and the
// key hints.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	navEntry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return
	}
	engine := components.Navigation.Get(navEntry).Engine
	palette := ActivePalette(ecs)
	w, h := engine.Viewport()

	barH := float32(cfg.HUD.ProgressHeight)
	vector.FillRect(screen, 0, 0, float32(w), barH, withAlpha(palette.Muted, 0.25), false)
	vector.FillRect(screen, 0, 0, float32(w*ScrollProgress(engine)), barH, palette.Progress, false)

	if !fonts.Loaded(fonts.Small) {
		return
	}
	small := fonts.Small.Get()

	if title := ActiveSectionTitle(ecs); title != "" {
		text.Draw(screen, title, small, hudMargin, hudMargin+int(barH)+12, palette.Muted)
	}

	if !cfg.HUD.ShowHints || engine.DeviceClass() == navigation.Mobile {
		return
	}
	hint := "Arrows fly   T theme   M music   C contact"
	bounds := text.BoundString(small, hint)
	x := (int(w) - bounds.Dx()) / 2
	text.Draw(screen, hint, small, x, int(h)-hudMargin, palette.Muted)
}
