package audio

// Pan places a mono signal in the stereo field. panning is -1 (hard left)
// to 1 (hard right).
func Pan(input, panning float32) Sample {
	return Sample{
		Left:  input * (0.5 - panning*0.5),
		Right: input * (0.5 + panning*0.5),
	}
}

// Width scales the stereo image: 1 leaves the sample unchanged, 0 collapses
// it to mono, -1 swaps the channels.
func Width(input Sample, width float32) Sample {
	return input.Scale(0.5 + width*0.5).Add(input.Swap().Scale(0.5 - width*0.5))
}

// Mono sums a stereo sample to a single channel.
func Mono(input Sample) float32 {
	return (input.Left + input.Right) * 0.5
}

// Clip hard-limits input to [-0.9, 0.9].
func Clip(input float32) float32 {
	if input > 0.9 {
		return 0.9
	}
	if input < -0.9 {
		return -0.9
	}
	return input
}

// Gain multiplies its input by a pulled amount, so the amount can itself be
// an envelope or automation curve.
type Gain struct {
	In     Input[float32]
	Amount Input[float32]

	tick int
	out  float32
}

func NewGain() *Gain {
	return &Gain{}
}

func (g *Gain) At(tick int) float32 {
	if tick != g.tick {
		g.tick = tick
		g.out = g.In.At(tick) * g.Amount.At(tick)
	}
	return g.out
}

// LowPass is a one-pole smoothing filter: out = prev + (in-prev)*cutoff.
// Cutoff is in (0, 1]; smaller values smooth harder.
type LowPass struct {
	In     Input[float32]
	Cutoff Input[float32]

	prev float32
	tick int
}

func NewLowPass() *LowPass {
	return &LowPass{}
}

func (l *LowPass) At(tick int) float32 {
	if tick != l.tick {
		l.tick = tick
		l.prev += (l.In.At(tick) - l.prev) * l.Cutoff.At(tick)
	}
	return l.prev
}
