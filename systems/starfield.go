package systems

import (
	"image/color"
	"math"

	"github.com/automoto/starfolio/components"
	"github.com/automoto/starfolio/shared/starfield"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const glowSpriteSize = 32

var starDrawOp = &ebiten.DrawImageOptions{}

// UpdateStarField advances drift, twinkle and wrapping using the scroll
// offset the navigation engine pushed earlier this tick.
func UpdateStarField(ecs *ecs.ECS) {
	entry, ok := components.StarField.First(ecs.World)
	if !ok {
		return
	}
	components.StarField.Get(entry).Field.Update()
}

// DrawStarField clears and redraws each layer surface, then composites the
// layers back to front.
func DrawStarField(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.StarField.First(ecs.World)
	if !ok {
		return
	}
	sf := components.StarField.Get(entry)
	if sf.Field.Stopped() {
		return
	}
	ensureStarSurfaces(sf)
	if sf.Glow == nil {
		sf.Glow = newGlowSprite(glowSpriteSize)
	}

	cfg := sf.Field.Config()
	star := ActivePalette(ecs).Star
	layers := sf.Field.Layers()

	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		surface := sf.Surfaces[i]
		surface.Clear()

		sf.Field.VisibleParticles(layer, func(x, y float64, p *starfield.Particle) {
			vector.FillCircle(surface, float32(x), float32(y), float32(p.Size),
				withAlpha(star, float32(p.Opacity)), true)

			if p.HasGlow {
				drawGlow(surface, sf.Glow, x, y, p.Size*cfg.GlowScale, star, p.Opacity*cfg.GlowAlpha)
			}
		})

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		screen.DrawImage(surface, drawOp)
	}
}

func ensureStarSurfaces(sf *components.StarFieldData) {
	w, h := sf.Field.Viewport()
	iw, ih := int(math.Max(1, w)), int(math.Max(1, h))
	layers := len(sf.Field.Layers())
	if len(sf.Surfaces) == layers {
		return
	}
	for _, s := range sf.Surfaces {
		if s != nil {
			s.Deallocate()
		}
	}
	sf.Surfaces = make([]*ebiten.Image, layers)
	for i := range sf.Surfaces {
		sf.Surfaces[i] = ebiten.NewImage(iw, ih)
	}
}

func drawGlow(dst, sprite *ebiten.Image, x, y, radius float64, c color.NRGBA, alpha float64) {
	scale := radius * 2 / glowSpriteSize
	starDrawOp.GeoM.Reset()
	starDrawOp.GeoM.Translate(-glowSpriteSize/2, -glowSpriteSize/2)
	starDrawOp.GeoM.Scale(scale, scale)
	starDrawOp.GeoM.Translate(x, y)
	starDrawOp.ColorScale.Reset()
	starDrawOp.ColorScale.ScaleWithColor(c)
	starDrawOp.ColorScale.ScaleAlpha(float32(alpha))
	starDrawOp.Filter = ebiten.FilterLinear
	dst.DrawImage(sprite, starDrawOp)
}

// newGlowSprite builds a white radial falloff, opaque at the center and
// transparent at the rim.
func newGlowSprite(size int) *ebiten.Image {
	pix := radialFalloff(size)
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// radialFalloff returns premultiplied RGBA pixels of a linear radial gradient.
func radialFalloff(size int) []byte {
	pix := make([]byte, size*size*4)
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			a := 1 - math.Hypot(dx, dy)/c
			if a < 0 {
				a = 0
			}
			v := byte(a * 255)
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	return pix
}
