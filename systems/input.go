package systems

import (
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls keyboard and gamepad state into the Input component.
// Must run BEFORE UpdateNavigation in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	focused := ebiten.IsFocused()
	input.FocusLost = input.Focused && !focused
	input.Focused = focused
	if !focused {
		// Key-up events are lost while unfocused
		return
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	analogLeft, analogRight, analogUp, analogDown := getAnalogStickState(gamepadIDs)

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}
	if analogUp {
		input.Current[cfg.ActionMoveUp] = true
		gamepadUsed = true
	}
	if analogDown {
		input.Current[cfg.ActionMoveDown] = true
		gamepadUsed = true
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
		if vertical < -deadzone {
			up = true
		}
		if vertical > deadzone {
			down = true
		}
	}

	return
}

// UpdatePointer merges mouse and touch state into the Pointer component.
func UpdatePointer(ecs *ecs.ECS) {
	p := getOrCreatePointer(ecs)

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	p.Touches = p.Touches[:0]
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		p.Touches = append(p.Touches, components.TouchPoint{ID: id, X: float64(x), Y: float64(y)})
	}
	p.NewTouches = inpututil.AppendJustPressedTouchIDs(p.NewTouches[:0])

	wasDown := p.Down
	if len(p.Touches) > 0 {
		p.X, p.Y = p.Touches[0].X, p.Touches[0].Y
		p.Down = true
		p.Touching = true
		getOrCreateInput(ecs).LastInputMethod = components.InputTouch
	} else if p.Touching {
		// Keep the last touch position for the release frame
		p.Touching = false
		p.Down = false
	} else {
		mx, my := ebiten.CursorPosition()
		x, y := float64(mx), float64(my)
		// Compare against the last mouse reading; touch devices report a fixed cursor
		if x != p.MouseX || y != p.MouseY {
			p.HasMouse = true
		}
		p.MouseX, p.MouseY = x, y
		p.X, p.Y = x, y
		p.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	p.JustDown = p.Down && !wasDown
	p.JustUp = !p.Down && wasDown
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Start focused so the first unfocused frame counts as a focus loss
		components.Input.Get(entry).Focused = true
	}
	return components.Input.Get(entry)
}

func getOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
