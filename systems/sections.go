package systems

import (
	"math"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/fonts"
	"github.com/automoto/starfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// VisibleFraction returns how much of section index is on screen, 0 to 1.
// Sections are one viewport wide and laid out left to right.
func VisibleFraction(index int, width, scroll float64) float64 {
	if width <= 0 {
		return 0
	}
	left := float64(index)*width - scroll
	visible := math.Min(left+width, width) - math.Max(left, 0)
	if visible <= 0 {
		return 0
	}
	return visible / width
}

// ActiveSection returns the index of the section under the viewport's left
// edge once lead pixels are added, clamped to [0, count).
func ActiveSection(scroll, width, lead float64, count int) int {
	if count <= 0 || width <= 0 {
		return 0
	}
	i := int(math.Floor((scroll + lead) / width))
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}

// UpdateSections starts a reveal tween when a section crosses the visibility
// threshold and reverses it when the section leaves.
func UpdateSections(ecs *ecs.ECS) {
	navEntry, ok := components.Navigation.First(ecs.World)
	if !ok {
		return
	}
	engine := components.Navigation.Get(navEntry).Engine
	w, _ := engine.Viewport()
	scroll := engine.ScrollOffset()
	dt := float32(1) / float32(cfg.C.TPS)

	tags.Section.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Section.Get(e)
		inView := VisibleFraction(s.Index, w, scroll) >= cfg.Reveal.Threshold

		switch {
		case inView && !s.Revealed:
			s.Revealed = true
			s.Tween = revealTween(s.Progress, 1)
		case !inView && s.Revealed:
			s.Revealed = false
			s.Tween = revealTween(s.Progress, 0)
		}

		if s.Tween == nil {
			return
		}
		var done bool
		s.Progress, done = s.Tween.Update(dt)
		if done {
			s.Tween = nil
		}
	})
}

// revealTween runs from the current progress, so a reversal midway takes
// only the remaining share of the duration.
func revealTween(from, to float32) *gween.Tween {
	d := cfg.Reveal.Duration * float32(math.Abs(float64(to-from)))
	if d <= 0 {
		d = cfg.Reveal.Duration
	}
	return gween.New(from, to, d, ease.OutQuad)
}

// DrawSections renders every section that is at least partly revealed and on
// screen.
func DrawSections(ecs *ecs.ECS, screen *ebiten.Image) {
	navEntry, ok := components.Navigation.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Body) {
		return
	}
	engine := components.Navigation.Get(navEntry).Engine
	w, h := engine.Viewport()
	offset := engine.Transform().ContentPx
	palette := ActivePalette(ecs)

	titleFace := fonts.Title.Get()
	headingFace := fonts.Heading.Get()
	bodyFace := fonts.Body.Get()
	lineHeight := faceHeight(bodyFace) * cfg.Section.LineSpacing

	tags.Section.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Section.Get(e)
		if s.Progress <= 0 {
			return
		}
		left := float64(s.Index)*w + offset
		if left+w <= 0 || left >= w {
			return
		}

		alpha := s.Progress
		x := int(left + w*cfg.Section.PaddingX)
		y := h*cfg.Section.TitleY + float64(cfg.Reveal.OffsetY*(1-s.Progress))

		subtitle := s.Subtitle
		caret := false
		if e.HasComponent(components.Typewriter) {
			tw := components.Typewriter.Get(e)
			subtitle = string(tw.Text[:tw.Shown])
			caret = tw.Shown < len(tw.Text)
		}

		text.Draw(screen, s.Title, titleFace, x, int(y), withAlpha(palette.Title, alpha))
		y += faceHeight(titleFace) * 1.2

		if subtitle != "" || caret {
			if caret {
				subtitle += "_"
			}
			text.Draw(screen, subtitle, headingFace, x, int(y), withAlpha(palette.Accent, alpha))
			y += faceHeight(headingFace) * 1.6
		}

		body := withAlpha(palette.Text, alpha)
		for _, line := range s.Body {
			if line == "" {
				y += lineHeight / 2
				continue
			}
			text.Draw(screen, line, bodyFace, x, int(y), body)
			y += lineHeight
		}
	})
}

func faceHeight(face font.Face) float64 {
	m := face.Metrics()
	return float64((m.Ascent + m.Descent).Ceil())
}
