package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate   int
	MusicVolume  float64 // 0.0 - 1.0
	StartPlaying bool

	// Ambient drone synthesis
	Chord       []float64 // Hz, one sine voice per entry
	Amplitude   float64   // peak of the mixed signal, 0.0 - 1.0
	SwellHz     float64   // slow volume swell
	ChordBars   int       // seconds between chord shifts
	Progression []float64 // frequency multipliers cycled every ChordBars
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:   44100,
		MusicVolume:  0.35,
		StartPlaying: false,

		Chord:       []float64{110, 164.81, 220, 277.18},
		Amplitude:   0.18,
		SwellHz:     0.07,
		ChordBars:   8,
		Progression: []float64{1, 0.8909, 0.7937, 0.8409},
	}
}
