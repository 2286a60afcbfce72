package navigation

import (
	"errors"
	"math"
	"testing"
)

type recordingListener struct {
	offsets []float64
}

func (r *recordingListener) NotifyScrollOffset(offset float64) {
	r.offsets = append(r.offsets, offset)
}

func (r *recordingListener) last() float64 {
	if len(r.offsets) == 0 {
		return math.NaN()
	}
	return r.offsets[len(r.offsets)-1]
}

func testConfig() Config {
	return Config{
		StartX:               5,
		StartY:               45,
		MinX:                 5,
		MaxX:                 90,
		MinY:                 10,
		MaxY:                 85,
		MoveSpeed:            0.8,
		MobileScrollSpeed:    1.5,
		MobileBreakpoint:     768,
		ContentWidthMultiple: 6,
		SwipeThreshold:       10,
		SwipeMultiplier:      2,
		BackgroundParallax:   0.5,
	}
}

func newTestEngine(t *testing.T, width, height float64) (*Engine, *recordingListener) {
	t.Helper()
	l := &recordingListener{}
	e, err := NewEngine(testConfig(), width, height, l)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, l
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted x bounds", func(c *Config) { c.MinX, c.MaxX = 90, 5 }},
		{"inverted y bounds", func(c *Config) { c.MinY, c.MaxY = 85, 10 }},
		{"zero content multiple", func(c *Config) { c.ContentWidthMultiple = 0 }},
		{"negative speed", func(c *Config) { c.MoveSpeed = -1 }},
		{"negative swipe threshold", func(c *Config) { c.SwipeThreshold = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			_, err := NewEngine(cfg, 1000, 800, &recordingListener{})
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	t.Run("nil listener", func(t *testing.T) {
		_, err := NewEngine(testConfig(), 1000, 800, nil)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestInitialState(t *testing.T) {
	e, l := newTestEngine(t, 1000, 800)

	if m := e.Marker(); m.X != 5 || m.Y != 45 {
		t.Errorf("Expected marker at (5,45), got (%.2f,%.2f)", m.X, m.Y)
	}
	if e.ScrollOffset() != 0 {
		t.Errorf("Expected scroll 0, got %.2f", e.ScrollOffset())
	}
	if !e.PrevDisabled() || e.NextDisabled() {
		t.Errorf("Expected prev disabled and next enabled at start")
	}
	if len(l.offsets) != 1 || l.offsets[0] != 0 {
		t.Errorf("Expected one initial broadcast of 0, got %v", l.offsets)
	}
}

func TestHoldRightPlateausAtMaxScroll(t *testing.T) {
	e, l := newTestEngine(t, 1000, 800)
	e.SetHeld(Right, true)

	for i := 0; i < 100; i++ {
		e.Update()
	}
	if !approx(e.ScrollOffset(), 800) {
		t.Errorf("Expected scroll 800 after 100 frames, got %.4f", e.ScrollOffset())
	}

	for i := 0; i < 700; i++ {
		e.Update()
	}
	if e.ScrollOffset() != 5000 {
		t.Errorf("Expected scroll to plateau at 5000, got %.4f", e.ScrollOffset())
	}
	if e.Marker().X != 90 {
		t.Errorf("Expected marker x clamped to 90, got %.4f", e.Marker().X)
	}
	if l.last() != 5000 {
		t.Errorf("Expected star field to receive 5000, got %.4f", l.last())
	}
	if !e.NextDisabled() || e.PrevDisabled() {
		t.Errorf("Expected next disabled and prev enabled at max scroll")
	}
	if e.Rotation() != RotationRight {
		t.Errorf("Expected rotation %v, got %v", RotationRight, e.Rotation())
	}
}

func TestClampHoldsUnderAnyInput(t *testing.T) {
	e, _ := newTestEngine(t, 1280, 720)
	cfg := e.Config()

	sequences := [][]Direction{
		{Up, Left},
		{Down, Right},
		{Up, Right},
		{Down, Left},
	}
	for _, seq := range sequences {
		e.ReleaseAll()
		for _, d := range seq {
			e.SetHeld(d, true)
		}
		for i := 0; i < 500; i++ {
			e.Update()
			m := e.Marker()
			if m.X < cfg.MinX || m.X > cfg.MaxX || m.Y < cfg.MinY || m.Y > cfg.MaxY {
				t.Fatalf("Marker escaped bounds: (%.2f,%.2f)", m.X, m.Y)
			}
			if s := e.ScrollOffset(); s < 0 || s > e.MaxScrollOffset() {
				t.Fatalf("Scroll escaped bounds: %.2f", s)
			}
		}
	}
}

func TestKeyboardIgnoredOnMobile(t *testing.T) {
	e, _ := newTestEngine(t, 375, 667)
	e.SetHeld(Right, true)
	e.SetHeld(Down, true)

	f := e.Update()
	if f.Device != Mobile {
		t.Fatalf("Expected mobile device class, got %v", f.Device)
	}
	if f.Moved {
		t.Errorf("Expected no movement from keyboard on mobile")
	}
	if e.ScrollOffset() != 0 || e.Marker().Y != 45 {
		t.Errorf("Expected state unchanged, got scroll %.2f marker y %.2f", e.ScrollOffset(), e.Marker().Y)
	}
	if m := e.MarkerOnScreen(); m.X != 50 || m.Y != 50 {
		t.Errorf("Expected mobile marker pinned to center, got (%.2f,%.2f)", m.X, m.Y)
	}
}

func TestButtonsScrollOnEveryDevice(t *testing.T) {
	tests := []struct {
		name         string
		width        float64
		wantStep     float64
		wantRotation float64
	}{
		{"desktop", 1000, 15, RotationRight},
		{"mobile", 400, 6, RotationLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, tt.width, 800)
			e.SetPressed(Next, true)
			e.Update()
			e.Update()
			if !approx(e.ScrollOffset(), tt.wantStep*2) {
				t.Errorf("Expected scroll %.2f, got %.4f", tt.wantStep*2, e.ScrollOffset())
			}

			e.SetPressed(Next, false)
			e.SetPressed(Prev, true)
			e.Update()
			if !approx(e.ScrollOffset(), tt.wantStep) {
				t.Errorf("Expected scroll %.2f, got %.4f", tt.wantStep, e.ScrollOffset())
			}
			// Desktop buttons leave the last keyboard rotation untouched.
			if e.Rotation() != tt.wantRotation {
				t.Errorf("Expected rotation %v, got %v", tt.wantRotation, e.Rotation())
			}
		})
	}
}

func TestSwipeScrollsByDoubleDelta(t *testing.T) {
	e, l := newTestEngine(t, 375, 667)

	e.BeginSwipe(200, 300)
	if !e.MoveSwipe(150, 300) {
		t.Fatalf("Expected swipe to apply")
	}
	if e.ScrollOffset() != 100 {
		t.Errorf("Expected scroll 100, got %.2f", e.ScrollOffset())
	}
	if e.MaxScrollOffset() != 1875 {
		t.Errorf("Expected max scroll 1875, got %.2f", e.MaxScrollOffset())
	}
	if l.last() != 100 {
		t.Errorf("Expected broadcast of 100, got %.2f", l.last())
	}

	// Re-based start: a small follow-up move stays under the threshold.
	if e.MoveSwipe(145, 300) {
		t.Errorf("Expected sub-threshold move to be ignored")
	}

	e.EndSwipe()
	if e.Swiping() {
		t.Errorf("Expected swipe to end")
	}
	if e.Rotation() != RotationRight {
		t.Errorf("Expected rotation reset to right on mobile touch end")
	}
}

func TestSwipeIgnoresVerticalAndSmallMoves(t *testing.T) {
	tests := []struct {
		name   string
		toX    float64
		toY    float64
		wantOK bool
	}{
		{"vertical dominates", 170, 200, false},
		{"exactly threshold", 190, 300, false},
		{"just past threshold", 189, 300, true},
		{"backwards at zero stays clamped", 260, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, 375, 667)
			e.BeginSwipe(200, 300)
			ok := e.MoveSwipe(tt.toX, tt.toY)
			if ok != tt.wantOK {
				t.Errorf("Expected applied=%v, got %v", tt.wantOK, ok)
			}
			if e.ScrollOffset() < 0 {
				t.Errorf("Scroll went negative: %.2f", e.ScrollOffset())
			}
		})
	}
}

func TestMoveSwipeWithoutBegin(t *testing.T) {
	e, _ := newTestEngine(t, 375, 667)
	if e.MoveSwipe(0, 0) {
		t.Errorf("Expected no scroll without an active swipe")
	}
}

func TestResizeReclampsScroll(t *testing.T) {
	e, l := newTestEngine(t, 1000, 800)
	e.SetPressed(Next, true)
	for i := 0; i < 400; i++ {
		e.Update()
	}
	if e.ScrollOffset() != 5000 {
		t.Fatalf("Expected scroll 5000 before resize, got %.2f", e.ScrollOffset())
	}

	e.Resize(500, 800)
	if e.MaxScrollOffset() != 2500 {
		t.Errorf("Expected max scroll 2500, got %.2f", e.MaxScrollOffset())
	}
	if e.ScrollOffset() != 2500 {
		t.Errorf("Expected scroll re-clamped to 2500, got %.2f", e.ScrollOffset())
	}
	if l.last() != 2500 {
		t.Errorf("Expected listener to receive 2500, got %.2f", l.last())
	}
}

func TestResizeIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, 1000, 800)
	e.SetHeld(Right, true)
	for i := 0; i < 50; i++ {
		e.Update()
	}

	e.Resize(900, 700)
	scroll, marker, tr := e.ScrollOffset(), e.Marker(), e.Transform()
	e.Resize(900, 700)

	if e.ScrollOffset() != scroll || e.Marker() != marker || e.Transform() != tr {
		t.Errorf("Expected second resize to change nothing")
	}
}

func TestReleaseAllStopsMovement(t *testing.T) {
	e, _ := newTestEngine(t, 1000, 800)
	e.SetHeld(Right, true)
	e.SetHeld(Up, true)
	e.SetPressed(Next, true)
	e.Update()

	e.ReleaseAll()
	before := e.ScrollOffset()
	f := e.Update()
	if f.Moved || e.ScrollOffset() != before {
		t.Errorf("Expected no movement after focus loss")
	}
	for _, d := range []Direction{Up, Down, Left, Right} {
		if e.Held(d) {
			t.Errorf("Expected direction %d released", d)
		}
	}
}

func TestTransformUsesHalfMagnitudeBackground(t *testing.T) {
	e, _ := newTestEngine(t, 1000, 800)
	e.BeginSwipe(500, 0)
	e.MoveSwipe(250, 0)

	tr := e.Transform()
	if tr.ContentPx != -500 || tr.BackgroundPx != -250 {
		t.Errorf("Expected px transforms -500/-250, got %.2f/%.2f", tr.ContentPx, tr.BackgroundPx)
	}
	if tr.ContentVW != -50 || tr.BackgroundVW != -25 {
		t.Errorf("Expected vw transforms -50/-25, got %.2f/%.2f", tr.ContentVW, tr.BackgroundVW)
	}
}

func TestZeroWidthViewport(t *testing.T) {
	e, _ := newTestEngine(t, 0, 0)
	e.SetPressed(Next, true)
	e.Update()

	tr := e.Transform()
	if math.IsNaN(tr.ContentVW) || math.IsInf(tr.ContentVW, 0) {
		t.Errorf("Expected finite transform, got %v", tr.ContentVW)
	}
	if e.ScrollOffset() != 0 {
		t.Errorf("Expected scroll 0, got %.2f", e.ScrollOffset())
	}
}

func TestStopHaltsUpdates(t *testing.T) {
	e, _ := newTestEngine(t, 1000, 800)
	e.SetHeld(Right, true)
	e.Stop()
	if f := e.Update(); f.Moved {
		t.Errorf("Expected stopped engine not to move")
	}
	if !e.Stopped() {
		t.Errorf("Expected Stopped to report true")
	}
}
