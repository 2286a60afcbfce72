package systems

import (
	"image/color"
	"math"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayoutControls moves every control hitbox for a new viewport size.
// Prev/next sit in the bottom corners, the icon buttons along the top right.
func LayoutControls(ecs *ecs.ECS, width, height float64) {
	size, margin := cfg.Controls.ButtonSize, cfg.Controls.Margin
	icon, spacing := cfg.Controls.IconSize, cfg.Controls.IconSpacing

	tags.Control.Each(ecs.World, func(e *donburi.Entry) {
		ctl := components.Control.Get(e)
		obj := components.Object.Get(e)

		switch ctl.Kind {
		case components.ControlPrev:
			obj.X, obj.Y = margin, height-margin-size
		case components.ControlNext:
			obj.X, obj.Y = width-margin-size, height-margin-size
		default:
			// Contact is rightmost, then audio, then theme
			slot := float64(components.ControlContact - ctl.Kind)
			obj.X = width - margin - icon - slot*(icon+spacing)
			obj.Y = margin
		}
		obj.Update()
	})
}

// UpdateControls hit-tests the pointer against the control hitboxes.
// Hold controls are pressed while the pointer is down over them; the other
// controls click when a press that started on them is released over them.
func UpdateControls(ecs *ecs.ECS) {
	p := getOrCreatePointer(ecs)
	hit := controlAt(ecs, p.X, p.Y)

	tags.Control.Each(ecs.World, func(e *donburi.Entry) {
		ctl := components.Control.Get(e)
		over := hit == e
		ctl.Hovered = over && !p.Touching
		ctl.Clicked = false

		if ctl.Hold {
			ctl.Pressed = p.Down && over && !ctl.Disabled
			return
		}

		if p.JustDown && over {
			ctl.Pressed = true
		}
		if !p.Down {
			if ctl.Pressed && over && !ctl.Disabled {
				ctl.Clicked = true
			}
			ctl.Pressed = false
		}
	})
}

// controlAt returns the control under the given screen point, if any.
func controlAt(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	probeEntry, ok := tags.Probe.First(ecs.World)
	if !ok {
		return nil
	}
	probe := components.Object.Get(probeEntry)
	probe.X, probe.Y = x, y
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvControl)
	if check == nil {
		return nil
	}
	// Cells are coarse, so confirm with the exact rectangle
	for _, obj := range check.Objects {
		if x < obj.X || y < obj.Y || x >= obj.X+obj.W || y >= obj.Y+obj.H {
			continue
		}
		if e, ok := obj.Data.(*donburi.Entry); ok {
			return e
		}
	}
	return nil
}

// OverControl reports whether a screen point lies on any control.
func OverControl(ecs *ecs.ECS, x, y float64) bool {
	return controlAt(ecs, x, y) != nil
}

func findControl(ecs *ecs.ECS, kind components.ControlKind) *components.ControlData {
	var found *components.ControlData
	tags.Control.Each(ecs.World, func(e *donburi.Entry) {
		if found != nil {
			return
		}
		if ctl := components.Control.Get(e); ctl.Kind == kind {
			found = ctl
		}
	})
	return found
}

func controlPressed(ecs *ecs.ECS, kind components.ControlKind) bool {
	ctl := findControl(ecs, kind)
	return ctl != nil && ctl.Pressed
}

// ControlClicked reports whether a click control fired this frame.
func ControlClicked(ecs *ecs.ECS, kind components.ControlKind) bool {
	ctl := findControl(ecs, kind)
	return ctl != nil && ctl.Clicked
}

func setControlDisabled(ecs *ecs.ECS, kind components.ControlKind, disabled bool) {
	if ctl := findControl(ecs, kind); ctl != nil {
		ctl.Disabled = disabled
		if disabled {
			ctl.Pressed = false
		}
	}
}

// DrawControls renders every control as a translucent disc with its icon.
func DrawControls(ecs *ecs.ECS, screen *ebiten.Image) {
	palette := ActivePalette(ecs)
	audioOn := AudioPlaying(ecs)
	light := currentTheme(ecs) == cfg.ThemeLight

	tags.Control.Each(ecs.World, func(e *donburi.Entry) {
		ctl := components.Control.Get(e)
		obj := components.Object.Get(e)

		r := float32(obj.W / 2)
		cx, cy := float32(obj.X)+r, float32(obj.Y)+r

		bg, iconAlpha := palette.Button, float32(1)
		switch {
		case ctl.Disabled:
			bg, iconAlpha = palette.ButtonOff, 0.3
		case ctl.Pressed:
			bg.A = uint8(math.Min(255, float64(palette.Button.A)*2))
		case ctl.Hovered:
			bg.A = uint8(math.Min(255, float64(palette.Button.A)*1.5))
		}
		vector.FillCircle(screen, cx, cy, r, bg, true)

		icon := withAlpha(palette.ButtonIcon, iconAlpha)
		s := r * 0.45
		switch ctl.Kind {
		case components.ControlPrev:
			fillTriangle(screen, cx-s, cy, cx+s*0.6, cy-s, cx+s*0.6, cy+s, icon, 1)
		case components.ControlNext:
			fillTriangle(screen, cx+s, cy, cx-s*0.6, cy-s, cx-s*0.6, cy+s, icon, 1)
		case components.ControlTheme:
			drawThemeIcon(screen, cx, cy, s, icon, palette.Background, light)
		case components.ControlAudio:
			drawAudioIcon(screen, cx, cy, s, icon, audioOn)
		case components.ControlContact:
			drawContactIcon(screen, cx, cy, s, icon, palette.Background)
		}
	})
}

// drawThemeIcon shows a sun in the light theme and a crescent in the dark one.
func drawThemeIcon(dst *ebiten.Image, cx, cy, s float32, icon, bg color.Color, light bool) {
	if light {
		vector.FillCircle(dst, cx, cy, s*0.55, icon, true)
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			sin, cos := math.Sincos(a)
			x0, y0 := cx+float32(cos)*s*0.75, cy+float32(sin)*s*0.75
			x1, y1 := cx+float32(cos)*s, cy+float32(sin)*s
			vector.StrokeLine(dst, x0, y0, x1, y1, 1.5, icon, true)
		}
		return
	}
	vector.FillCircle(dst, cx, cy, s*0.8, icon, true)
	vector.FillCircle(dst, cx+s*0.35, cy-s*0.25, s*0.7, bg, true)
}

func drawAudioIcon(dst *ebiten.Image, cx, cy, s float32, icon color.Color, on bool) {
	vector.FillRect(dst, cx-s, cy-s*0.3, s*0.5, s*0.6, icon, false)
	vector.FillRect(dst, cx-s*0.5, cy-s*0.3, s*0.2, s*0.6, icon, false)
	vector.StrokeLine(dst, cx-s*0.5, cy-s*0.3, cx, cy-s*0.8, 2, icon, true)
	vector.StrokeLine(dst, cx-s*0.5, cy+s*0.3, cx, cy+s*0.8, 2, icon, true)
	vector.StrokeLine(dst, cx, cy-s*0.8, cx, cy+s*0.8, 2, icon, true)
	if on {
		vector.StrokeLine(dst, cx+s*0.35, cy-s*0.35, cx+s*0.35, cy+s*0.35, 1.5, icon, true)
		vector.StrokeLine(dst, cx+s*0.7, cy-s*0.6, cx+s*0.7, cy+s*0.6, 1.5, icon, true)
		return
	}
	vector.StrokeLine(dst, cx+s*0.3, cy-s*0.4, cx+s, cy+s*0.4, 1.5, icon, true)
	vector.StrokeLine(dst, cx+s*0.3, cy+s*0.4, cx+s, cy-s*0.4, 1.5, icon, true)
}

func drawContactIcon(dst *ebiten.Image, cx, cy, s float32, icon, bg color.Color) {
	w, h := s*2, s*1.4
	x, y := cx-s, cy-h/2
	vector.FillRect(dst, x, y, w, h, icon, false)
	vector.StrokeLine(dst, x, y, cx, cy+h*0.1, 1.5, bg, true)
	vector.StrokeLine(dst, x+w, y, cx, cy+h*0.1, 1.5, bg, true)
}

// ContactRequested reports whether the contact form was asked for this frame.
func ContactRequested(ecs *ecs.ECS) bool {
	input := getOrCreateInput(ecs)
	return GetAction(input, cfg.ActionOpenContact).JustPressed || ControlClicked(ecs, components.ControlContact)
}
