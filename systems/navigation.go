package systems

import (
	"math"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const shipTurnRate = 0.25

// UpdateNavigation feeds held directions and hold controls into the engine
// and advances it one frame. The engine pushes the scroll offset to the star
// field before UpdateStarField runs.
func UpdateNavigation(ecs *ecs.ECS) {
	entry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return
	}
	nav := components.Navigation.Get(entry)
	engine := nav.Engine
	input := getOrCreateInput(ecs)

	if input.FocusLost {
		engine.ReleaseAll()
	}

	engine.SetHeld(navigation.Up, input.Current[cfg.ActionMoveUp])
	engine.SetHeld(navigation.Down, input.Current[cfg.ActionMoveDown])
	engine.SetHeld(navigation.Left, input.Current[cfg.ActionMoveLeft])
	engine.SetHeld(navigation.Right, input.Current[cfg.ActionMoveRight])

	engine.SetPressed(navigation.Prev, controlPressed(ecs, components.ControlPrev))
	engine.SetPressed(navigation.Next, controlPressed(ecs, components.ControlNext))

	nav.LastFrame = engine.Update()

	setControlDisabled(ecs, components.ControlPrev, engine.PrevDisabled())
	setControlDisabled(ecs, components.ControlNext, engine.NextDisabled())

	ship := components.Ship.Get(entry)
	target := engine.Rotation() * math.Pi / 180
	ship.Angle += shortestAngle(ship.Angle, target) * shipTurnRate
	ship.Flicker++
}

// shortestAngle returns the signed difference to turn from a to b.
func shortestAngle(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// DrawShip renders the marker. It points up at angle zero.
func DrawShip(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return
	}
	engine := components.Navigation.Get(entry).Engine
	ship := components.Ship.Get(entry)
	palette := ActivePalette(ecs)

	w, h := engine.Viewport()
	m := engine.MarkerOnScreen()
	cx, cy := m.X/100*w, m.Y/100*h

	sin, cos := math.Sincos(ship.Angle)
	rot := func(x, y float64) (float32, float32) {
		return float32(cx + x*cos - y*sin), float32(cy + x*sin + y*cos)
	}

	l, hw := cfg.Ship.Length/2, cfg.Ship.Width/2

	// Engine flame, drawn first so the hull covers its base
	if nav := components.Navigation.Get(entry); nav.LastFrame.Moved {
		flame := cfg.Ship.FlameSize * (1 + 0.35*math.Sin(float64(ship.Flicker)*0.9))
		fx0, fy0 := rot(-hw*0.45, l*0.7)
		fx1, fy1 := rot(hw*0.45, l*0.7)
		fx2, fy2 := rot(0, l*0.7+flame)
		fillTriangle(screen, fx0, fy0, fx1, fy1, fx2, fy2, palette.Flame, 0.9)
	}

	nx, ny := rot(0, -l)
	lx, ly := rot(-hw, l)
	rx, ry := rot(hw, l)
	bx, by := rot(0, l*0.55)
	fillTriangle(screen, nx, ny, lx, ly, bx, by, palette.Ship, 1)
	fillTriangle(screen, nx, ny, bx, by, rx, ry, palette.Ship, 1)

	// Cockpit
	cx0, cy0 := rot(0, -l*0.45)
	cx1, cy1 := rot(-hw*0.25, l*0.05)
	cx2, cy2 := rot(hw*0.25, l*0.05)
	fillTriangle(screen, cx0, cy0, cx1, cy1, cx2, cy2, palette.Accent, 1)
}

// StopNavigation halts the engine and the star field. Both stay readable but
// no longer change.
func StopNavigation(ecs *ecs.ECS) {
	if entry, ok := components.Navigation.First(ecs.World); ok {
		components.Navigation.Get(entry).Engine.Stop()
	}
	if entry, ok := components.StarField.First(ecs.World); ok {
		components.StarField.Get(entry).Field.Stop()
	}
}
