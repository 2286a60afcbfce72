package systems

import (
	"github.com/automoto/starfolio/components"
	"github.com/yohamta/donburi/ecs"
)

// RequestResize records a new window size. It is applied once no further
// change arrived for the debounce window. Repeating the pending size is a no-op.
func RequestResize(ecs *ecs.ECS, width, height float64) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	if width == vp.PendingWidth && height == vp.PendingHeight {
		return
	}
	vp.PendingWidth, vp.PendingHeight = width, height
	if width == vp.Width && height == vp.Height {
		// Back to the applied size before the debounce fired
		vp.Resize.Cancel()
		return
	}
	vp.Resize.Trigger()
}

// UpdateViewport fires the debounced resize.
func UpdateViewport(ecs *ecs.ECS) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	if !vp.Resize.Tick() {
		return
	}
	ApplyViewport(ecs, vp.PendingWidth, vp.PendingHeight)
}

// ApplyViewport pushes a viewport size to every size-dependent component.
func ApplyViewport(ecs *ecs.ECS, width, height float64) {
	if entry, ok := components.Viewport.First(ecs.World); ok {
		vp := components.Viewport.Get(entry)
		vp.Width, vp.Height = width, height
		vp.PendingWidth, vp.PendingHeight = width, height
	}

	// The engine goes first so the field regenerates at the re-clamped scroll
	if entry, ok := components.Navigation.First(ecs.World); ok {
		components.Navigation.Get(entry).Engine.Resize(width, height)
	}

	if entry, ok := components.StarField.First(ecs.World); ok {
		sf := components.StarField.Get(entry)
		sf.Field.Resize(width, height)
		for _, s := range sf.Surfaces {
			if s != nil {
				s.Deallocate()
			}
		}
		sf.Surfaces = nil
	}

	LayoutControls(ecs, width, height)
}

// ViewportSize returns the applied viewport size.
func ViewportSize(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return 0, 0
	}
	vp := components.Viewport.Get(entry)
	return vp.Width, vp.Height
}
