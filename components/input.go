package components

import (
	cfg "github.com/automoto/starfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTouch
)

func (m InputMethod) String() string {
	switch m {
	case InputGamepad:
		return "gamepad"
	case InputTouch:
		return "touch"
	default:
		return "keyboard"
	}
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
	Focused         bool                  // Window focus this frame
	FocusLost       bool                  // Focus dropped since last frame
}

var Input = donburi.NewComponentType[InputData]()

// TouchPoint is one active touch in screen pixels
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y float64
}

// PointerData merges mouse and touch into a single polled state.
type PointerData struct {
	X, Y     float64 // mouse cursor, or the first touch
	MouseX   float64
	MouseY   float64
	Down     bool
	JustDown bool
	JustUp   bool
	HasMouse bool // mouse moved at least once; drives the cursor follower
	Touching bool // the current or last press came from a touch

	Touches     []TouchPoint
	NewTouches  []ebiten.TouchID
	SwipeTouch  ebiten.TouchID
	SwipeActive bool
}

var Pointer = donburi.NewComponentType[PointerData]()
