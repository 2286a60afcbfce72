package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SectionData is one viewport-wide content panel.
type SectionData struct {
	Index    int
	ID       string
	Title    string
	Subtitle string
	Body     []string

	Revealed bool
	Progress float32      // 0 hidden, 1 fully revealed
	Tween    *gween.Tween // nil when settled
}

var Section = donburi.NewComponentType[SectionData]()
