package systems

import (
	"image"
	"image/color"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// 1x1 white source for DrawTriangles, cut from the middle of a 3x3 image
	// so linear filtering never samples the edge.
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	triVertices = make([]ebiten.Vertex, 0, 4)
	triIndices  = []uint16{0, 1, 2}
	triOp       = &ebiten.DrawTrianglesOptions{AntiAlias: true}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawBackdrop clears the screen with the active palette background.
func DrawBackdrop(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(ActivePalette(ecs).Background)
}

// ActivePalette returns the palette of the current theme, or the default one
// when no theme entity exists.
func ActivePalette(ecs *ecs.ECS) cfg.Palette {
	entry, ok := components.Theme.First(ecs.World)
	if !ok {
		return cfg.CurrentPalette(cfg.Theme.Default)
	}
	return cfg.CurrentPalette(components.Theme.Get(entry).Current)
}

// fillTriangle draws a solid triangle.
func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, c color.NRGBA, alpha float32) {
	a := float32(c.A) / 255 * alpha
	r := float32(c.R) / 255 * a
	g := float32(c.G) / 255 * a
	b := float32(c.B) / 255 * a

	triVertices = triVertices[:0]
	for _, p := range [3][2]float32{{x0, y0}, {x1, y1}, {x2, y2}} {
		triVertices = append(triVertices, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	dst.DrawTriangles(triVertices, triIndices, whiteSubImage, triOp)
}

// strokeRect draws a one pixel rectangle outline.
func strokeRect(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(dst, x, y, w, 1, c, false)     // Top
	vector.FillRect(dst, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(dst, x, y, 1, h, c, false)     // Left
	vector.FillRect(dst, x+w-1, y, 1, h, c, false) // Right
}

// withAlpha scales a straight-alpha color's opacity.
func withAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A) * alpha)
	return c
}
