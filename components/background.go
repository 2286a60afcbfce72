package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// NebulaBlob is a soft colored disc on the background layer
type NebulaBlob struct {
	X, Y   float64 // background space, X spans the scrolled background width
	Radius float64
	Tint   int // index into the palette's nebula colors
}

type BackgroundData struct {
	Blobs  []NebulaBlob
	Sprite *ebiten.Image // radial falloff, tinted per blob
}

var Background = donburi.NewComponentType[BackgroundData]()
