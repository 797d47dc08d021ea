package audio

import "math"

const twoPi = 2 * math.Pi

// Osc is a sine oscillator built on a two-variable rotation recurrence
// (a quadrature oscillator). The recurrence is amplitude-normalized by
// construction and needs no phase wraparound, but it is never renormalized:
// very long runs at extreme frequencies can accumulate small amplitude
// drift. That is a known limitation, not corrected here.
type Osc struct {
	Freq Input[float32]

	sin, cos float32
	tick     int
	out      float32
}

func NewOsc() *Osc {
	return &Osc{cos: 1}
}

func (o *Osc) At(tick int) float32 {
	if tick != o.tick {
		o.tick = tick
		f := o.Freq.At(tick) * twoPi * DT
		o.cos += -o.sin * f
		o.sin += o.cos * f
		o.out = o.sin
	}
	return o.out
}

// Saw ramps from -1 to 1 and wraps.
type Saw struct {
	Freq Input[float32]

	phase float32
	tick  int
}

func NewSaw() *Saw {
	return &Saw{}
}

func (s *Saw) At(tick int) float32 {
	if tick != s.tick {
		s.tick = tick
		s.phase += s.Freq.At(tick) * 2 * DT
		if s.phase > 1 {
			s.phase -= 2
		}
	}
	return s.phase
}

// Square outputs +1 for the upper half of its phase, -1 for the lower.
type Square struct {
	Freq Input[float32]

	phase float32
	tick  int
	out   float32
}

func NewSquare() *Square {
	return &Square{}
}

func (s *Square) At(tick int) float32 {
	if tick != s.tick {
		s.tick = tick
		s.phase += s.Freq.At(tick) * DT
		if s.phase > 1 {
			s.phase -= 1
		}
		if s.phase > 0.5 {
			s.out = 1
		} else {
			s.out = -1
		}
	}
	return s.out
}

// Noise emits uniform values in [-1, 1] from its own deterministic
// generator.
type Noise struct {
	rand *Rand
	tick int
	out  float32
}

func NewNoise() *Noise {
	return NewNoiseSeeded(0)
}

// NewNoiseSeeded uses the given seed; 0 selects the default seed.
func NewNoiseSeeded(seed uint64) *Noise {
	return &Noise{rand: NewRand(seed)}
}

func (n *Noise) At(tick int) float32 {
	if tick != n.tick {
		n.tick = tick
		n.out = n.rand.Float()*2 - 1
	}
	return n.out
}
