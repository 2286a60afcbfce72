package archetypes

import (
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Viewport = newArchetype(
		components.Viewport,
	)
	Navigation = newArchetype(
		components.Navigation,
		components.Ship,
	)
	StarField = newArchetype(
		components.StarField,
	)
	Background = newArchetype(
		components.Background,
	)
	Space = newArchetype(
		components.Space,
	)
	Control = newArchetype(
		tags.Control,
		components.Control,
		components.Object,
	)
	Probe = newArchetype(
		tags.Probe,
		components.Object,
	)
	Section = newArchetype(
		tags.Section,
		components.Section,
	)
	Hero = newArchetype(
		tags.Section,
		tags.Hero,
		components.Section,
		components.Typewriter,
	)
	Theme = newArchetype(
		components.Theme,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	Debug = newArchetype(
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
