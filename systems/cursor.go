package systems

import (
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCursor eases the follower ring toward the mouse. Each new target
// restarts the tween from the ring's current position.
func UpdateCursor(ecs *ecs.ECS) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	p := getOrCreatePointer(ecs)
	w, _ := ViewportSize(ecs)

	c.Visible = p.HasMouse && !p.Touching && w >= cfg.Cursor.MinWidth
	if !c.Visible {
		// Snap so the ring does not sweep in from a stale spot
		c.X, c.Y = p.X, p.Y
		c.TargetX, c.TargetY = p.X, p.Y
		c.TweenX, c.TweenY = nil, nil
		return
	}

	if p.X != c.TargetX || p.Y != c.TargetY {
		c.TargetX, c.TargetY = p.X, p.Y
		c.TweenX = gween.New(float32(c.X), float32(p.X), cfg.Cursor.Duration, ease.OutQuad)
		c.TweenY = gween.New(float32(c.Y), float32(p.Y), cfg.Cursor.Duration, ease.OutQuad)
	}

	dt := float32(1) / float32(cfg.C.TPS)
	if c.TweenX != nil {
		x, done := c.TweenX.Update(dt)
		c.X = float64(x)
		if done {
			c.TweenX = nil
		}
	}
	if c.TweenY != nil {
		y, done := c.TweenY.Update(dt)
		c.Y = float64(y)
		if done {
			c.TweenY = nil
		}
	}
}

// DrawCursor renders the follower ring.
func DrawCursor(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cursor.First(ecs.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	if !c.Visible {
		return
	}
	accent := ActivePalette(ecs).Accent
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(cfg.Cursor.Radius), 1.5, withAlpha(accent, 0.8), true)
}
