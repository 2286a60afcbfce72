package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/starfolio/archetypes"
	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/shared/navigation"
	"github.com/automoto/starfolio/shared/starfield"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStarField generates the particle layers for the given viewport.
func CreateStarField(ecs *ecs.ECS, width, height float64, seed int64) (*donburi.Entry, *starfield.Field, error) {
	field, err := starfield.New(cfg.StarField, width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, nil, fmt.Errorf("create star field: %w", err)
	}

	sf := archetypes.StarField.Spawn(ecs)
	components.StarField.SetValue(sf, components.StarFieldData{Field: field})
	return sf, field, nil
}

// CreateBackground scatters nebula blobs across the background strip. The
// strip is as wide as the viewport plus the background's share of the scroll.
func CreateBackground(ecs *ecs.ECS, navCfg navigation.Config, seed int64) *donburi.Entry {
	rng := rand.New(rand.NewSource(seed))
	span := 1 + (navCfg.ContentWidthMultiple-1)*navCfg.BackgroundParallax
	tints := len(cfg.CurrentPalette(cfg.Theme.Default).Nebula)
	if tints == 0 {
		tints = 1
	}

	blobs := make([]components.NebulaBlob, cfg.Background.BlobCount)
	for i := range blobs {
		blobs[i] = components.NebulaBlob{
			X:      rng.Float64() * span,
			Y:      rng.Float64(),
			Radius: cfg.Background.BlobRadiusMin + rng.Float64()*(cfg.Background.BlobRadiusMax-cfg.Background.BlobRadiusMin),
			Tint:   rng.Intn(tints),
		}
	}

	bg := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(bg, components.BackgroundData{Blobs: blobs})
	return bg
}
