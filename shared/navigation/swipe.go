package navigation

import "math"

type swipeTracker struct {
	active         bool
	startX, startY float64
}

// BeginSwipe starts tracking a touch at the given screen position. Touches that
// land on a navigation control must not be passed here.
func (e *Engine) BeginSwipe(x, y float64) {
	e.swipe = swipeTracker{active: true, startX: x, startY: y}
}

// Swiping reports whether a touch is being tracked.
func (e *Engine) Swiping() bool { return e.swipe.active }

// MoveSwipe feeds the current touch position. A mostly horizontal move past the
// threshold scrolls by delta times the swipe multiplier and re-bases the start
// point. It reports whether the scroll offset was touched.
func (e *Engine) MoveSwipe(x, y float64) bool {
	if !e.swipe.active || e.stopped {
		return false
	}

	dx := e.swipe.startX - x
	dy := e.swipe.startY - y
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= e.cfg.SwipeThreshold {
		return false
	}

	e.scrollBy(dx * e.cfg.SwipeMultiplier)
	e.swipe.startX = x
	e.swipe.startY = y
	e.broadcast()
	return true
}

// EndSwipe stops tracking. On mobile the marker faces right again.
func (e *Engine) EndSwipe() {
	if !e.swipe.active {
		return
	}
	e.swipe = swipeTracker{}
	if e.DeviceClass() == Mobile {
		e.rotation = RotationRight
	}
}
