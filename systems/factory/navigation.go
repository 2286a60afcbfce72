package factory

import (
	"fmt"
	"math"

	"github.com/automoto/starfolio/archetypes"
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNavigation builds the engine and the ship marker. The listener
// receives every scroll offset the engine computes.
func CreateNavigation(ecs *ecs.ECS, navCfg navigation.Config, width, height float64, listener navigation.ScrollListener) (*donburi.Entry, error) {
	engine, err := navigation.NewEngine(navCfg, width, height, listener)
	if err != nil {
		return nil, fmt.Errorf("create navigation: %w", err)
	}

	nav := archetypes.Navigation.Spawn(ecs)
	components.Navigation.SetValue(nav, components.NavigationData{Engine: engine})
	components.Ship.SetValue(nav, components.ShipData{
		Angle: engine.Rotation() * math.Pi / 180,
	})
	return nav, nil
}

// CreateViewport tracks the applied window size and the resize debounce.
func CreateViewport(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	vp := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(vp, components.ViewportData{
		Width:         width,
		Height:        height,
		PendingWidth:  width,
		PendingHeight: height,
		Resize:        navigation.NewDebouncer(cfg.Viewport.ResizeDebounceTicks),
	})
	return vp
}
