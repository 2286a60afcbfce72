package components

import "github.com/yohamta/donburi"

// TypewriterData reveals Text one rune at a time.
type TypewriterData struct {
	Text      []rune
	Shown     int
	Delay     int // ticks before the first rune
	Interval  int // ticks per rune
	Countdown int
	Started   bool
}

var Typewriter = donburi.NewComponentType[TypewriterData]()
