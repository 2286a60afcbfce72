package factory

import (
	"github.com/automoto/starfolio/archetypes"
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateControls spawns the on-screen controls and the pointer probe used to
// hit-test them. Positions are assigned by systems.LayoutControls.
func CreateControls(ecs *ecs.ECS) []*donburi.Entry {
	kinds := []components.ControlKind{
		components.ControlPrev,
		components.ControlNext,
		components.ControlTheme,
		components.ControlAudio,
		components.ControlContact,
	}

	entries := make([]*donburi.Entry, 0, len(kinds))
	for _, kind := range kinds {
		entries = append(entries, CreateControl(ecs, kind))
	}
	CreateProbe(ecs)
	return entries
}

func CreateControl(ecs *ecs.ECS, kind components.ControlKind) *donburi.Entry {
	control := archetypes.Control.Spawn(ecs)

	hold := kind == components.ControlPrev || kind == components.ControlNext
	size := cfg.Controls.IconSize
	objTags := []string{tags.ResolvControl}
	if hold {
		size = cfg.Controls.ButtonSize
		objTags = append(objTags, tags.ResolvHold)
	}

	obj := resolv.NewObject(0, 0, size, size, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = control

	components.Object.SetValue(control, components.ObjectData{Object: obj})
	components.Control.SetValue(control, components.ControlData{
		Kind: kind,
		Hold: hold,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return control
}

// CreateProbe adds the one pixel pointer object.
func CreateProbe(ecs *ecs.ECS) *donburi.Entry {
	probe := archetypes.Probe.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	obj.Data = probe
	components.Object.SetValue(probe, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return probe
}
