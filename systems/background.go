package systems

import (
	"github.com/automoto/starfolio/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const nebulaSpriteSize = 128

var bgDrawOp = &ebiten.DrawImageOptions{}

// DrawBackground renders the nebula layer, translated by the engine's
// background offset (half the content scroll).
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	bgEntry, ok := components.Background.First(ecs.World)
	if !ok {
		return
	}
	navEntry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return
	}
	bg := components.Background.Get(bgEntry)
	engine := components.Navigation.Get(navEntry).Engine
	if bg.Sprite == nil {
		bg.Sprite = newGlowSprite(nebulaSpriteSize)
	}

	nebula := ActivePalette(ecs).Nebula
	if len(nebula) == 0 {
		return
	}

	w, h := engine.Viewport()
	offset := engine.Transform().BackgroundPx

	for _, b := range bg.Blobs {
		x := b.X*w + offset
		y := b.Y * h
		// Cull with the blob radius as padding
		if x+b.Radius < 0 || x-b.Radius > w || y+b.Radius < 0 || y-b.Radius > h {
			continue
		}

		scale := b.Radius * 2 / nebulaSpriteSize
		bgDrawOp.GeoM.Reset()
		bgDrawOp.GeoM.Translate(-nebulaSpriteSize/2, -nebulaSpriteSize/2)
		bgDrawOp.GeoM.Scale(scale, scale)
		bgDrawOp.GeoM.Translate(x, y)
		bgDrawOp.ColorScale.Reset()
		bgDrawOp.ColorScale.ScaleWithColor(nebula[b.Tint%len(nebula)])
		bgDrawOp.Filter = ebiten.FilterLinear
		screen.DrawImage(bg.Sprite, bgDrawOp)
	}
}
