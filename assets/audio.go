package assets

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AmbientStream synthesizes an endless soft pad as 16-bit little-endian
// stereo PCM. It never returns io.EOF, so a player built on it loops forever.
type AmbientStream struct {
	sampleRate  float64
	chord       []float64
	amplitude   float64
	swellHz     float64
	barSamples  int
	progression []float64

	sample int
	phases []float64
}

// NewAmbientStream builds a stream for the given chord. A progression
// multiplies every voice's frequency and advances every barSeconds.
func NewAmbientStream(sampleRate int, chord []float64, amplitude, swellHz float64, barSeconds int, progression []float64) *AmbientStream {
	if barSeconds < 1 {
		barSeconds = 1
	}
	if len(progression) == 0 {
		progression = []float64{1}
	}
	return &AmbientStream{
		sampleRate:  float64(sampleRate),
		chord:       chord,
		amplitude:   amplitude,
		swellHz:     swellHz,
		barSamples:  barSeconds * sampleRate,
		progression: progression,
		phases:      make([]float64, len(chord)),
	}
}

func (s *AmbientStream) Read(buf []byte) (int, error) {
	// Only whole frames (2 channels x 2 bytes)
	n := len(buf) / 4 * 4
	voices := float64(len(s.chord))
	if voices == 0 {
		voices = 1
	}

	for i := 0; i < n; i += 4 {
		bar := (s.sample / s.barSamples) % len(s.progression)
		mult := s.progression[bar]

		mix := 0.0
		for v, f := range s.chord {
			s.phases[v] += 2 * math.Pi * f * mult / s.sampleRate
			if s.phases[v] > 2*math.Pi {
				s.phases[v] -= 2 * math.Pi
			}
			mix += math.Sin(s.phases[v])
		}
		mix /= voices

		t := float64(s.sample) / s.sampleRate
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*s.swellHz*t)
		val := mix * swell * s.amplitude

		v := int16(clampUnit(val) * 32767)
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
		s.sample++
	}
	return n, nil
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// NewAmbientPlayer creates a paused player streaming an ambient pad.
func NewAmbientPlayer(ctx *audio.Context, stream *AmbientStream) (*audio.Player, error) {
	return ctx.NewPlayer(stream)
}
