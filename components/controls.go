package components

import "github.com/yohamta/donburi"

// ControlKind identifies an on-screen control
type ControlKind int

const (
	ControlPrev ControlKind = iota
	ControlNext
	ControlTheme
	ControlAudio
	ControlContact
)

func (k ControlKind) String() string {
	switch k {
	case ControlPrev:
		return "prev"
	case ControlNext:
		return "next"
	case ControlTheme:
		return "theme"
	case ControlAudio:
		return "audio"
	case ControlContact:
		return "contact"
	}
	return "unknown"
}

// ControlData stores per-frame interaction state. The hitbox lives in the
// entry's Object component.
type ControlData struct {
	Kind     ControlKind
	Hold     bool // acts while held (prev/next) rather than on click
	Pressed  bool
	Hovered  bool
	Disabled bool
	Clicked  bool // released over the control this frame
}

var Control = donburi.NewComponentType[ControlData]()
