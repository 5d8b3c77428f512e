package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a sine whose pitch glides linearly from one frequency to another
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	length   int // Samples over which the glide completes
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to, volume float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		volume: volume,
		length: sr.N(100 * time.Millisecond),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short fade in to avoid clicks
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		sample := g.volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator is decaying noise over a low rumble, for explosions
type NoiseGenerator struct {
	sr     beep.SampleRate
	decay  float64 // Envelope rate, higher is shorter
	volume float64
	pos    int
	seed   uint32
}

func NewNoiseGenerator(sr beep.SampleRate, decay, volume float64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:     sr,
		decay:  decay,
		volume: volume,
		seed:   0x9e3779b9,
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		// xorshift32
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		rumble := 0.5 * math.Sin(2*math.Pi*60*t)
		sample := g.volume * envelope * (0.6*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
