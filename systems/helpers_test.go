package systems

import (
	"math"
	"testing"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/automoto/starfolio/shared/starfield"
	"github.com/automoto/starfolio/systems/factory"
	"github.com/automoto/starfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds the size-dependent part of the portfolio world without
// registering systems or touching ebiten input.
func newTestECS(t *testing.T, width, height float64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateViewport(e, width, height)
	factory.CreateSpace(e, 3840, 2160, cfg.Controls.SpaceCellSize, cfg.Controls.SpaceCellSize)

	_, field, err := factory.CreateStarField(e, width, height, 1)
	if err != nil {
		t.Fatalf("CreateStarField: %v", err)
	}
	if _, err := factory.CreateNavigation(e, cfg.Navigation, width, height, field); err != nil {
		t.Fatalf("CreateNavigation: %v", err)
	}
	factory.CreateControls(e)
	LayoutControls(e, width, height)
	factory.CreateTheme(e, cfg.ThemeDark)
	return e
}

func testEngine(e *ecs.ECS) *navigation.Engine {
	return components.Navigation.Get(components.Navigation.MustFirst(e.World)).Engine
}

func testField(e *ecs.ECS) *starfield.Field {
	return components.StarField.Get(components.StarField.MustFirst(e.World)).Field
}

func testControl(e *ecs.ECS, kind components.ControlKind) (*components.ControlData, *components.ObjectData) {
	var ctl *components.ControlData
	var obj *components.ObjectData
	tags.Control.Each(e.World, func(entry *donburi.Entry) {
		if c := components.Control.Get(entry); c.Kind == kind {
			ctl, obj = c, components.Object.Get(entry)
		}
	})
	return ctl, obj
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
