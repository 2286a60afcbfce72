// Package navigation turns discrete input events into a clamped marker
// position and horizontal scroll offset, one step per frame.
package navigation

import (
	"errors"
	"fmt"
	"math"
)

// Direction is a held movement intent.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	directionCount
)

// Button is an on-screen hold control.
type Button int

const (
	Prev Button = iota
	Next
	buttonCount
)

// DeviceClass selects which input channel moves the marker in a frame.
type DeviceClass int

const (
	Desktop DeviceClass = iota
	Mobile
)

func (d DeviceClass) String() string {
	if d == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Marker rotation hints in degrees.
const (
	RotationLeft  = 270.0
	RotationRight = 90.0
)

// ErrInvalidConfig is returned by NewEngine when the configuration cannot
// produce a bounded state.
var ErrInvalidConfig = errors.New("invalid navigation config")

// Config holds the constants fixed at construction. Marker coordinates are
// percentages of the viewport, speeds are percent per frame.
type Config struct {
	StartX, StartY float64
	MinX, MaxX     float64
	MinY, MaxY     float64

	MoveSpeed         float64
	MobileScrollSpeed float64

	MobileBreakpoint     float64 // widths at or below are Mobile
	ContentWidthMultiple float64 // content width in viewport widths

	SwipeThreshold  float64 // pixels
	SwipeMultiplier float64

	BackgroundParallax float64
}

// Validate reports whether the config describes a usable engine.
func (c Config) Validate() error {
	switch {
	case c.MinX > c.MaxX:
		return fmt.Errorf("%w: minX %.2f > maxX %.2f", ErrInvalidConfig, c.MinX, c.MaxX)
	case c.MinY > c.MaxY:
		return fmt.Errorf("%w: minY %.2f > maxY %.2f", ErrInvalidConfig, c.MinY, c.MaxY)
	case c.ContentWidthMultiple < 1:
		return fmt.Errorf("%w: content width multiple %.2f < 1", ErrInvalidConfig, c.ContentWidthMultiple)
	case c.MoveSpeed < 0 || c.MobileScrollSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidConfig)
	case c.SwipeThreshold < 0:
		return fmt.Errorf("%w: negative swipe threshold", ErrInvalidConfig)
	}
	return nil
}

// ScrollListener receives the scroll offset whenever the engine changes it.
type ScrollListener interface {
	NotifyScrollOffset(offset float64)
}

// Vec2 is a 2D point.
type Vec2 struct {
	X, Y float64
}

// Frame summarizes one Update call.
type Frame struct {
	Device DeviceClass
	Moved  bool
}

// Transform is the visual translation of the scrolled layers.
type Transform struct {
	ContentVW    float64 // content layer translation in viewport-width percent
	BackgroundVW float64
	ContentPx    float64
	BackgroundPx float64
}

// Engine owns the navigation state. It is not safe for concurrent use; every
// method is expected to run on the game loop goroutine.
type Engine struct {
	cfg Config

	marker   Vec2
	scroll   float64
	rotation float64

	held    [directionCount]bool
	pressed [buttonCount]bool

	width, height float64

	swipe swipeTracker

	listener ScrollListener
	stopped  bool
}

// NewEngine creates an engine for a viewport of the given size. The listener
// receives every scroll change, in the same frame it happens.
func NewEngine(cfg Config, width, height float64, listener ScrollListener) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if listener == nil {
		return nil, fmt.Errorf("%w: nil scroll listener", ErrInvalidConfig)
	}

	e := &Engine{
		cfg:      cfg,
		marker:   Vec2{X: cfg.StartX, Y: cfg.StartY},
		rotation: RotationRight,
		listener: listener,
	}
	e.setViewport(width, height)
	e.clampMarker()
	e.broadcast()
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetHeld records a key-down (true) or key-up (false) for a direction.
func (e *Engine) SetHeld(d Direction, held bool) {
	if d < 0 || d >= directionCount {
		return
	}
	e.held[d] = held
}

// Held reports whether a direction is currently held.
func (e *Engine) Held(d Direction) bool {
	if d < 0 || d >= directionCount {
		return false
	}
	return e.held[d]
}

// SetPressed records the pressed state of a hold control.
func (e *Engine) SetPressed(b Button, pressed bool) {
	if b < 0 || b >= buttonCount {
		return
	}
	e.pressed[b] = pressed
}

// Pressed reports whether a hold control is pressed.
func (e *Engine) Pressed(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return e.pressed[b]
}

// ReleaseAll drops every held direction and pressed control. Called on focus
// loss, where the matching key-up events never arrive.
func (e *Engine) ReleaseAll() {
	e.held = [directionCount]bool{}
	e.pressed = [buttonCount]bool{}
}

// DeviceClass derives the device class from the current viewport width.
func (e *Engine) DeviceClass() DeviceClass {
	if e.width > e.cfg.MobileBreakpoint {
		return Desktop
	}
	return Mobile
}

// MaxScrollOffset is the largest reachable scroll offset in pixels.
func (e *Engine) MaxScrollOffset() float64 {
	return e.width * (e.cfg.ContentWidthMultiple - 1)
}

// ScrollOffset returns the current scroll offset in pixels.
func (e *Engine) ScrollOffset() float64 { return e.scroll }

// Marker returns the marker position in viewport percent.
func (e *Engine) Marker() Vec2 { return e.marker }

// MarkerOnScreen returns where the marker is drawn. Mobile pins it to the
// viewport center.
func (e *Engine) MarkerOnScreen() Vec2 {
	if e.DeviceClass() == Mobile {
		return Vec2{X: 50, Y: 50}
	}
	return e.marker
}

// Rotation returns the marker rotation hint in degrees.
func (e *Engine) Rotation() float64 { return e.rotation }

// Viewport returns the viewport size the engine currently works with.
func (e *Engine) Viewport() (width, height float64) { return e.width, e.height }

// Update advances one frame.
func (e *Engine) Update() Frame {
	f := Frame{Device: e.DeviceClass()}
	if e.stopped {
		return f
	}

	if f.Device == Desktop {
		f.Moved = e.applyKeyboard()
	}
	if e.applyButtons(f.Device) {
		f.Moved = true
	}

	if f.Moved {
		e.broadcast()
	}
	return f
}

func (e *Engine) applyKeyboard() bool {
	moved := false
	step := e.cfg.MoveSpeed
	scrollStep := e.width * step / 100

	if e.held[Up] {
		e.marker.Y -= step
		e.clampMarker()
		moved = true
	}
	if e.held[Down] {
		e.marker.Y += step
		e.clampMarker()
		moved = true
	}
	if e.held[Left] {
		e.marker.X -= step
		e.clampMarker()
		e.scrollBy(-scrollStep)
		e.rotation = RotationLeft
		moved = true
	}
	if e.held[Right] {
		e.marker.X += step
		e.clampMarker()
		e.scrollBy(scrollStep)
		e.rotation = RotationRight
		moved = true
	}
	return moved
}

func (e *Engine) applyButtons(device DeviceClass) bool {
	moved := false
	step := e.width * e.cfg.MobileScrollSpeed / 100

	if e.pressed[Prev] {
		e.scrollBy(-step)
		if device == Mobile {
			e.rotation = RotationLeft
		}
		moved = true
	}
	if e.pressed[Next] {
		e.scrollBy(step)
		if device == Mobile {
			e.rotation = RotationRight
		}
		moved = true
	}
	return moved
}

// Resize applies a new viewport size, re-clamping the scroll offset against
// the new maximum. Applying the same size twice is a no-op the second time.
func (e *Engine) Resize(width, height float64) {
	e.setViewport(width, height)
	e.clampMarker()
	e.scrollBy(0)
	e.broadcast()
}

// Transform returns the layer translations for the current scroll offset.
func (e *Engine) Transform() Transform {
	var vw float64
	if e.width > 0 {
		vw = e.scroll / e.width * 100
	}
	return Transform{
		ContentVW:    -vw,
		BackgroundVW: -vw * e.cfg.BackgroundParallax,
		ContentPx:    -e.scroll,
		BackgroundPx: -e.scroll * e.cfg.BackgroundParallax,
	}
}

// PrevDisabled reports whether the scroll offset sits at its lower bound.
func (e *Engine) PrevDisabled() bool { return e.scroll <= 0 }

// NextDisabled reports whether the scroll offset sits at its upper bound.
func (e *Engine) NextDisabled() bool { return e.scroll >= e.MaxScrollOffset() }

// Stop halts per-frame movement. Subsequent Update calls report no movement.
func (e *Engine) Stop() { e.stopped = true }

// Stopped reports whether Stop was called.
func (e *Engine) Stopped() bool { return e.stopped }

func (e *Engine) setViewport(width, height float64) {
	if math.IsNaN(width) || width < 0 {
		width = 0
	}
	if math.IsNaN(height) || height < 0 {
		height = 0
	}
	e.width, e.height = width, height
}

func (e *Engine) scrollBy(delta float64) {
	e.scroll = clamp(e.scroll+delta, 0, e.MaxScrollOffset())
}

func (e *Engine) clampMarker() {
	e.marker.X = clamp(e.marker.X, e.cfg.MinX, e.cfg.MaxX)
	e.marker.Y = clamp(e.marker.Y, e.cfg.MinY, e.cfg.MaxY)
}

func (e *Engine) broadcast() {
	e.listener.NotifyScrollOffset(e.scroll)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(hi, v))
}
