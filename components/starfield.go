package components

import (
	"github.com/automoto/starfolio/shared/starfield"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// StarFieldData owns the particle simulation and one offscreen surface per
// layer. Surfaces are created lazily by the renderer and dropped on resize.
type StarFieldData struct {
	Field    *starfield.Field
	Surfaces []*ebiten.Image
	Glow     *ebiten.Image
}

var StarField = donburi.NewComponentType[StarFieldData]()
