package tags

import "github.com/yohamta/donburi"

var (
	Section = donburi.NewTag().SetName("Section")
	Control = donburi.NewTag().SetName("Control")
	Hero    = donburi.NewTag().SetName("Hero")
	Probe   = donburi.NewTag().SetName("Probe")
)

// Resolv tags for control hit-testing
const (
	ResolvControl = "control"
	ResolvHold    = "hold"
	ResolvPointer = "pointer"
)
