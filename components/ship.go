package components

import "github.com/yohamta/donburi"

// ShipData holds render-only state for the navigation marker.
type ShipData struct {
	Angle   float64 // radians, eased toward the engine's rotation hint
	Flicker int     // ticks, drives the engine flame
}

var Ship = donburi.NewComponentType[ShipData]()
