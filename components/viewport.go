package components

import (
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/yohamta/donburi"
)

// ViewportData tracks the applied and the pending (debounced) viewport size.
type ViewportData struct {
	Width, Height               float64
	PendingWidth, PendingHeight float64
	Resize                      *navigation.Debouncer
}

var Viewport = donburi.NewComponentType[ViewportData]()
