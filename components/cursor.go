package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CursorData is the ring that eases toward the mouse on wide screens.
type CursorData struct {
	X, Y           float64
	TargetX        float64
	TargetY        float64
	TweenX, TweenY *gween.Tween
	Visible        bool
}

var Cursor = donburi.NewComponentType[CursorData]()
