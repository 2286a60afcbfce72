package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global music state (singleton component)
type AudioData struct {
	Context     *audio.Context
	MusicPlayer *audio.Player
	MusicVolume float64 // 0.0 - 1.0
	Playing     bool
	Toggle      bool // request queued by input or the audio control
}

var Audio = donburi.NewComponentType[AudioData]()
