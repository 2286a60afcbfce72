package systems

import (
	"log"
	"sync"

	"github.com/automoto/starfolio/assets"
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// UpdateAudio applies a queued toggle from the M key or the audio control.
// The context and the ambient player are created on the first play.
func UpdateAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleAudio).JustPressed || ControlClicked(ecs, components.ControlAudio) {
		a.Toggle = true
	}
	if !a.Toggle {
		return
	}
	a.Toggle = false

	if a.Playing {
		if a.MusicPlayer != nil {
			a.MusicPlayer.Pause()
		}
		a.Playing = false
		return
	}

	if a.MusicPlayer == nil {
		initGlobalAudio()
		a.Context = globalAudioContext
		stream := assets.NewAmbientStream(
			cfg.Audio.SampleRate,
			cfg.Audio.Chord,
			cfg.Audio.Amplitude,
			cfg.Audio.SwellHz,
			cfg.Audio.ChordBars,
			cfg.Audio.Progression,
		)
		player, err := assets.NewAmbientPlayer(a.Context, stream)
		if err != nil {
			log.Printf("Warning: Could not start ambient track: %v", err)
			return
		}
		a.MusicPlayer = player
	}
	a.MusicPlayer.SetVolume(a.MusicVolume)
	a.MusicPlayer.Play()
	a.Playing = true
}

// AudioPlaying reports whether the ambient track is playing.
func AudioPlaying(ecs *ecs.ECS) bool {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return false
	}
	return components.Audio.Get(entry).Playing
}

// PauseAudio pauses playback without clearing the playing flag, so the scene
// can resume it later.
func PauseAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	if a := components.Audio.Get(entry); a.MusicPlayer != nil {
		a.MusicPlayer.Pause()
	}
}

// ResumeAudio restarts playback if the track was playing before PauseAudio.
func ResumeAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	if a := components.Audio.Get(entry); a.Playing && a.MusicPlayer != nil {
		a.MusicPlayer.Play()
	}
}

// CloseAudio releases the ambient player.
func CloseAudio(ecs *ecs.ECS) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	a := components.Audio.Get(entry)
	if a.MusicPlayer != nil {
		_ = a.MusicPlayer.Close()
		a.MusicPlayer = nil
	}
	a.Playing = false
}
