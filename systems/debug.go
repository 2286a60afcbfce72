package systems

import (
	"fmt"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/fonts"
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/automoto/starfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hitbox in the resolv space and prints the
// navigation state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(ecs.World)
	if !ok || !components.Debug.Get(entry).Enabled {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := cfg.Green
			if obj.HasTags(tags.ResolvPointer) {
				c = cfg.Magenta
			}
			strokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c)
		}
	}

	lines := DebugLines(ecs)
	if len(lines) == 0 || !fonts.Loaded(fonts.Small) {
		return
	}
	lines = append(lines, fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	small := fonts.Small.Get()
	_, h := ViewportSize(ecs)
	y := int(h) / 2
	vector.FillRect(screen, hudMargin-4, float32(y-16), 300, float32(len(lines)*16+8), cfg.BlackOverlay, false)
	for _, line := range lines {
		text.Draw(screen, line, small, hudMargin, y, cfg.Yellow)
		y += 16
	}
}

// DebugLines describes the navigation state, one line per row of the overlay.
func DebugLines(ecs *ecs.ECS) []string {
	navEntry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return nil
	}
	engine := components.Navigation.Get(navEntry).Engine
	m := engine.Marker()
	w, h := engine.Viewport()
	tr := engine.Transform()

	pending := false
	if vpEntry, ok := components.Viewport.First(ecs.World); ok {
		pending = components.Viewport.Get(vpEntry).Resize.Pending()
	}

	return []string{
		fmt.Sprintf("scroll %.1f / %.1f", engine.ScrollOffset(), engine.MaxScrollOffset()),
		fmt.Sprintf("content %.1fvw  bg %.1fvw", tr.ContentVW, tr.BackgroundVW),
		fmt.Sprintf("marker %.1f, %.1f  rot %.0f", m.X, m.Y, engine.Rotation()),
		fmt.Sprintf("buttons prev:%t next:%t", engine.Pressed(navigation.Prev), engine.Pressed(navigation.Next)),
		fmt.Sprintf("viewport %.0fx%.0f  %s  resize pending:%t", w, h, engine.DeviceClass(), pending),
		fmt.Sprintf("input %s", getOrCreateInput(ecs).LastInputMethod),
	}
}

// UpdateDebug toggles the overlay on F1.
func UpdateDebug(ecs *ecs.ECS) {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		return
	}
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		d := components.Debug.Get(entry)
		d.Enabled = !d.Enabled
	}
}
