package systems

import (
	"math"
	"testing"

	"github.com/automoto/starfolio/components"
	cfg "github.com/automoto/starfolio/config"
	"github.com/automoto/starfolio/systems/factory"
)

func TestCursorEasesToPointer(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	factory.CreateCursor(e)
	c := components.Cursor.Get(components.Cursor.MustFirst(e.World))
	p := getOrCreatePointer(e)

	p.HasMouse = true
	p.X, p.Y = 0, 0
	UpdateCursor(e)

	p.X, p.Y = 300, 200
	UpdateCursor(e)
	if !c.Visible {
		t.Fatalf("Expected the cursor to be visible on a wide viewport")
	}
	if c.X <= 0 || c.X >= 300 {
		t.Errorf("Expected the ring part way to the pointer, got x=%v", c.X)
	}

	ticks := int(math.Ceil(float64(cfg.Cursor.Duration)*float64(cfg.C.TPS))) + 1
	for i := 0; i < ticks; i++ {
		UpdateCursor(e)
	}
	if math.Abs(c.X-300) > 1e-3 || math.Abs(c.Y-200) > 1e-3 {
		t.Errorf("Expected the ring at (300, 200), got (%v, %v)", c.X, c.Y)
	}
}

func TestCursorHiddenOnNarrowViewport(t *testing.T) {
	e := newTestECS(t, 800, 600)
	factory.CreateCursor(e)
	c := components.Cursor.Get(components.Cursor.MustFirst(e.World))
	p := getOrCreatePointer(e)
	p.HasMouse = true
	p.X, p.Y = 100, 100

	UpdateCursor(e)
	if c.Visible {
		t.Errorf("Expected the cursor hidden below %v px", cfg.Cursor.MinWidth)
	}
}

func TestScrollProgress(t *testing.T) {
	e := newTestECS(t, 1280, 720)
	engine := testEngine(e)
	if got := ScrollProgress(engine); got != 0 {
		t.Errorf("Expected 0 at the start, got %v", got)
	}

	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = true
	for i := 0; i < 2000; i++ {
		UpdateNavigation(e)
	}
	if got := ScrollProgress(engine); !approx(got, 1) {
		t.Errorf("Expected 1 at the end, got %v", got)
	}
}
