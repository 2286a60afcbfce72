package systems

import (
	"github.com/automoto/starfolio/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSwipe routes a single touch to the engine's swipe gesture. Touches
// that start on a control are left to UpdateControls.
func UpdateSwipe(ecs *ecs.ECS) {
	entry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return
	}
	engine := components.Navigation.Get(entry).Engine
	p := getOrCreatePointer(ecs)

	if !p.SwipeActive {
		for _, id := range p.NewTouches {
			t, found := findTouch(p, id)
			if !found || OverControl(ecs, t.X, t.Y) {
				continue
			}
			engine.BeginSwipe(t.X, t.Y)
			p.SwipeTouch = id
			p.SwipeActive = true
			break
		}
		return
	}

	t, found := findTouch(p, p.SwipeTouch)
	if !found {
		engine.EndSwipe()
		p.SwipeActive = false
		return
	}
	engine.MoveSwipe(t.X, t.Y)
}

func findTouch(p *components.PointerData, id ebiten.TouchID) (components.TouchPoint, bool) {
	for _, t := range p.Touches {
		if t.ID == id {
			return t, true
		}
	}
	return components.TouchPoint{}, false
}
