package systems

import (
	"github.com/automoto/starfolio/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTypewriter advances every typewriter by one tick.
func UpdateTypewriter(ecs *ecs.ECS) {
	components.Typewriter.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceTypewriter(components.Typewriter.Get(e))
	})
}

// AdvanceTypewriter counts one tick. The first rune shows after Delay ticks,
// each following rune after Interval more.
func AdvanceTypewriter(tw *components.TypewriterData) {
	if tw.Shown >= len(tw.Text) {
		return
	}
	tw.Countdown--
	if tw.Countdown > 0 {
		return
	}
	tw.Started = true
	tw.Shown++
	tw.Countdown = tw.Interval
}

// ResetTypewriter restarts the effect with new text.
func ResetTypewriter(tw *components.TypewriterData, text string) {
	tw.Text = []rune(text)
	tw.Shown = 0
	tw.Started = false
	tw.Countdown = tw.Delay
}
