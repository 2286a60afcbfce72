// Package starfield simulates layered drifting, twinkling star particles that
// follow a horizontal scroll offset at per-layer parallax rates.
package starfield

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrInvalidConfig = errors.New("invalid star field config")

// LayerConfig describes one depth layer.
type LayerConfig struct {
	Count        int
	Speed        float64
	SizeMin      float64
	SizeMax      float64
	TwinkleSpeed float64
	Parallax     float64
}

type Config struct {
	Margin            float64 // pixels past the viewport before wrapping
	OpacityMin        float64
	OpacityMax        float64
	InitialOpacityMin float64 // initial opacity is uniform in [InitialOpacityMin, OpacityMax)
	GlowThreshold     float64 // particles larger than this get a halo
	GlowScale         float64 // halo radius as a multiple of size
	GlowAlpha         float64 // halo alpha as a multiple of opacity
	Layers            []LayerConfig
}

func (c Config) Validate() error {
	if c.Margin < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidConfig)
	}
	if c.OpacityMin > c.OpacityMax || c.OpacityMin < 0 || c.OpacityMax > 1 {
		return fmt.Errorf("%w: opacity range [%.2f,%.2f]", ErrInvalidConfig, c.OpacityMin, c.OpacityMax)
	}
	if c.InitialOpacityMin < c.OpacityMin || c.InitialOpacityMin > c.OpacityMax {
		return fmt.Errorf("%w: initial opacity %.2f outside range", ErrInvalidConfig, c.InitialOpacityMin)
	}
	for i, l := range c.Layers {
		if l.Count < 0 {
			return fmt.Errorf("%w: layer %d has negative count", ErrInvalidConfig, i)
		}
		if l.SizeMin > l.SizeMax {
			return fmt.Errorf("%w: layer %d size range [%.2f,%.2f]", ErrInvalidConfig, i, l.SizeMin, l.SizeMax)
		}
	}
	return nil
}

// Particle is one star. X is in layer space; the screen position is
// X - layer offset.
type Particle struct {
	X, Y    float64
	Size    float64
	Opacity float64
	Twinkle float64 // +1 brightening, -1 dimming
	VX, VY  float64
	HasGlow bool
}

// Layer is a set of particles sharing a parallax factor.
type Layer struct {
	Config    LayerConfig
	Particles []Particle
	offset    float64
}

// Offset is the layer's horizontal translation, scroll times parallax.
func (l *Layer) Offset() float64 { return l.offset }

// Field owns all layers. Like the navigation engine it runs on the game loop
// goroutine only.
type Field struct {
	cfg           Config
	rng           *rand.Rand
	width, height float64
	scroll        float64
	layers        []*Layer
	stopped       bool
}

// New builds and populates a field for the given viewport.
func New(cfg Config, width, height float64, rng *rand.Rand) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	f := &Field{cfg: cfg, rng: rng}
	f.Resize(width, height)
	return f, nil
}

// NotifyScrollOffset records the latest scroll offset. The next Update uses it.
func (f *Field) NotifyScrollOffset(offset float64) {
	f.scroll = offset
}

// ScrollOffset returns the last scroll offset received.
func (f *Field) ScrollOffset() float64 { return f.scroll }

// Layers returns the layers, nearest first.
func (f *Field) Layers() []*Layer { return f.layers }

// Viewport returns the size the particles were generated for.
func (f *Field) Viewport() (width, height float64) { return f.width, f.height }

func (f *Field) Config() Config { return f.cfg }

// Resize discards every particle and regenerates the layers for the new size.
// Particles are spread across the viewport at the current scroll offset.
func (f *Field) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height

	f.layers = make([]*Layer, len(f.cfg.Layers))
	for i, lc := range f.cfg.Layers {
		l := &Layer{Config: lc, Particles: make([]Particle, lc.Count)}
		l.offset = f.scroll * lc.Parallax
		for j := range l.Particles {
			l.Particles[j] = f.newParticle(lc, l.offset)
		}
		f.layers[i] = l
	}
}

func (f *Field) newParticle(lc LayerConfig, offset float64) Particle {
	r := f.rng
	size := r.Float64()*(lc.SizeMax-lc.SizeMin) + lc.SizeMin
	twinkle := -1.0
	if r.Float64() > 0.5 {
		twinkle = 1
	}
	return Particle{
		X:       offset + r.Float64()*f.width,
		Y:       r.Float64() * f.height,
		Size:    size,
		Opacity: r.Float64()*(f.cfg.OpacityMax-f.cfg.InitialOpacityMin) + f.cfg.InitialOpacityMin,
		Twinkle: twinkle,
		VX:      (r.Float64() - 0.5) * lc.Speed,
		VY:      (r.Float64() - 0.5) * lc.Speed * 0.3,
		HasGlow: size > f.cfg.GlowThreshold,
	}
}

// Update advances every particle one frame.
func (f *Field) Update() {
	if f.stopped {
		return
	}
	for _, l := range f.layers {
		f.updateLayer(l)
	}
}

func (f *Field) updateLayer(l *Layer) {
	l.offset = f.scroll * l.Config.Parallax
	m := f.cfg.Margin

	for i := range l.Particles {
		p := &l.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		p.Opacity += p.Twinkle * l.Config.TwinkleSpeed
		if p.Opacity >= f.cfg.OpacityMax {
			p.Opacity = f.cfg.OpacityMax
			p.Twinkle = -1
		} else if p.Opacity <= f.cfg.OpacityMin {
			p.Opacity = f.cfg.OpacityMin
			p.Twinkle = 1
		}

		sx := p.X - l.offset
		if sx > f.width+m {
			p.X = l.offset - m
		} else if sx < -m {
			p.X = l.offset + f.width + m
		}

		if p.Y > f.height+m {
			p.Y = -m
		} else if p.Y < -m {
			p.Y = f.height + m
		}
	}
}

// VisibleParticles calls fn with the screen position of every particle of the
// layer inside the viewport plus margin.
func (f *Field) VisibleParticles(l *Layer, fn func(x, y float64, p *Particle)) {
	m := f.cfg.Margin
	for i := range l.Particles {
		p := &l.Particles[i]
		x := p.X - l.offset
		if x < -m || x > f.width+m || p.Y < -m || p.Y > f.height+m {
			continue
		}
		fn(x, p.Y, p)
	}
}

// Stop cancels per-frame updates. It is safe to call more than once.
func (f *Field) Stop() { f.stopped = true }

func (f *Field) Stopped() bool { return f.stopped }
