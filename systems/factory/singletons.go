package factory

import (
	"github.com/automoto/starfolio/archetypes"
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTheme(ecs *ecs.ECS, current cfg.ThemeID) *donburi.Entry {
	theme := archetypes.Theme.Spawn(ecs)
	components.Theme.SetValue(theme, components.ThemeData{Current: current})
	return theme
}

// CreateAudio adds the music state. The player is created on the first play.
func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	a := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(a, components.AudioData{
		MusicVolume: cfg.Audio.MusicVolume,
		Toggle:      cfg.Audio.StartPlaying,
	})
	return a
}

func CreateCursor(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Cursor.Spawn(ecs)
}

func CreateDebug(ecs *ecs.ECS, enabled bool) *donburi.Entry {
	d := archetypes.Debug.Spawn(ecs)
	components.Debug.SetValue(d, components.DebugData{Enabled: enabled})
	return d
}
