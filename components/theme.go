package components

import (
	cfg "github.com/automoto/starfolio/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ThemeData struct {
	Current   cfg.ThemeID
	Fade      *gween.Tween
	FadeAlpha float32
	Dirty     bool // changed since the last save
}

var Theme = donburi.NewComponentType[ThemeData]()
