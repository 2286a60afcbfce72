package systems

import (
	"testing"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
)

func TestResizeIsDebounced(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	delay := cfg.Viewport.ResizeDebounceTicks

	RequestResize(e, 800, 600)
	for i := 1; i < delay; i++ {
		// Layout reports the same size every frame
		RequestResize(e, 800, 600)
		UpdateViewport(e)
		if w, _ := testEngine(e).Viewport(); w != 1280 {
			t.Fatalf("Expected engine width to stay 1280 at tick %d, got %v", i, w)
		}
	}

	UpdateViewport(e)
	if w, h := testEngine(e).Viewport(); w != 800 || h != 600 {
		t.Errorf("Expected engine viewport 800x600, got %vx%v", w, h)
	}
	if w, h := testField(e).Viewport(); w != 800 || h != 600 {
		t.Errorf("Expected star field viewport 800x600, got %vx%v", w, h)
	}
	if w, h := ViewportSize(e); w != 800 || h != 600 {
		t.Errorf("Expected applied viewport 800x600, got %vx%v", w, h)
	}
}

func TestResizeRestartsOnNewSize(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	delay := cfg.Viewport.ResizeDebounceTicks

	RequestResize(e, 900, 720)
	for i := 0; i < delay-1; i++ {
		UpdateViewport(e)
	}
	RequestResize(e, 800, 720)
	for i := 0; i < delay-1; i++ {
		UpdateViewport(e)
	}
	if w, _ := testEngine(e).Viewport(); w != 1280 {
		t.Fatalf("Expected no resize yet, got width %v", w)
	}

	UpdateViewport(e)
	if w, _ := testEngine(e).Viewport(); w != 800 {
		t.Errorf("Expected only the last size to apply, got width %v", w)
	}
}

func TestResizeBackToAppliedSizeCancels(t *testing.T) {
	e := newTestECS(t, 1280, 720)

	RequestResize(e, 800, 600)
	UpdateViewport(e)
	RequestResize(e, 1280, 720)

	for i := 0; i < cfg.Viewport.ResizeDebounceTicks*2; i++ {
		UpdateViewport(e)
	}
	vp := components.Viewport.Get(components.Viewport.MustFirst(e.World))
	if vp.Resize.Pending() {
		t.Errorf("Expected no pending resize")
	}
	if w, _ := testEngine(e).Viewport(); w != 1280 {
		t.Errorf("Expected width 1280, got %v", w)
	}
}

func TestApplyViewportReclampsScroll(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = true
	for i := 0; i < 2000; i++ {
		UpdateNavigation(e)
	}
	engine := testEngine(e)
	if !approx(engine.ScrollOffset(), engine.MaxScrollOffset()) {
		t.Fatalf("Expected scroll at max %v, got %v", engine.MaxScrollOffset(), engine.ScrollOffset())
	}

	ApplyViewport(e, 500, 720)
	want := 500 * (cfg.Navigation.ContentWidthMultiple - 1)
	if !approx(engine.ScrollOffset(), want) {
		t.Errorf("Expected scroll re-clamped to %v, got %v", want, engine.ScrollOffset())
	}
	if !approx(testField(e).ScrollOffset(), want) {
		t.Errorf("Expected star field to receive %v, got %v", want, testField(e).ScrollOffset())
	}
	_, next := testControl(e, components.ControlNext)
	if next.X != 500-cfg.Controls.Margin-cfg.Controls.ButtonSize {
		t.Errorf("Expected next control laid out for width 500, got x=%v", next.X)
	}
}

func TestApplyViewportRegeneratesStarsAtClampedScroll(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = true
	for i := 0; i < 2000; i++ {
		UpdateNavigation(e)
	}

	ApplyViewport(e, 500, 720)
	field := testField(e)
	field.Update()

	for i, l := range field.Layers() {
		onScreen := 0
		for _, p := range l.Particles {
			if sx := p.X - l.Offset(); sx >= 0 && sx <= 500 {
				onScreen++
			}
		}
		if onScreen < len(l.Particles)*9/10 {
			t.Errorf("Layer %d: expected most stars on screen after resize, got %d of %d", i, onScreen, len(l.Particles))
		}
	}
}
