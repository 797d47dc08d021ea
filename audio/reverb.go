package audio

// Reverb is the classic Freeverb network: per channel, eight parallel comb
// filters with damped feedback are summed and run through four series
// all-pass filters. The second channel's buffer lengths are offset by a
// fixed amount to decorrelate the two outputs, which gives the stereo
// spread.
type Reverb struct {
	In       Input[float32]
	RoomSize Input[float32]
	Damp     Input[float32]
	Wet      Input[float32]
	Dry      Input[float32]
	StereoW  Input[float32]

	left, right reverbChannel
	tick        int
	out         Sample
}

var (
	combLens    = [8]int{1116, 1188, 1277, 1356, 1422, 1491, 1557, 1617}
	allPassLens = [4]int{556, 441, 341, 225}
)

// stereoSpread offsets the right channel's buffer lengths.
const stereoSpread = 23

func NewReverb() *Reverb {
	r := &Reverb{}
	r.left.init(0)
	r.right.init(stereoSpread)
	return r
}

func (r *Reverb) At(tick int) Sample {
	if tick != r.tick {
		r.tick = tick
		in := r.In.At(tick)
		// Feedback stays below 1 for room sizes in [0, 1], so the impulse
		// response always decays.
		feedback := r.RoomSize.At(tick)*0.28 + 0.7
		damp := r.Damp.At(tick) * 0.4
		wet := r.Wet.At(tick) * 3
		dry := r.Dry.At(tick) * 2
		attenuated := in * 0.03
		outL := r.left.process(attenuated, feedback, damp)
		outR := r.right.process(attenuated, feedback, damp)
		mixed := Width(Sample{Left: outL, Right: outR}, r.StereoW.At(tick)).Scale(wet)
		r.out = mixed.Add(Mix(in).Scale(dry))
	}
	return r.out
}

type reverbChannel struct {
	combs     [8]comb
	allPasses [4]allPass
}

func (c *reverbChannel) init(spread int) {
	for i := range c.combs {
		c.combs[i].buf = make([]float32, combLens[i]+spread)
	}
	for i := range c.allPasses {
		c.allPasses[i].buf = make([]float32, allPassLens[i]+spread)
	}
}

func (c *reverbChannel) process(input, feedback, damp float32) float32 {
	var result float32
	for i := range c.combs {
		result += c.combs[i].process(input, feedback, damp)
	}
	for i := range c.allPasses {
		result = c.allPasses[i].process(result)
	}
	return result
}

// comb is a feedback comb filter that low-pass filters its feedback path,
// so high frequencies decay faster than lows.
type comb struct {
	buf  []float32
	pos  int
	prev float32
}

func (c *comb) process(input, feedback, damp float32) float32 {
	output := c.buf[c.pos]
	filtered := output*(1-damp) + c.prev*damp
	c.prev = filtered
	c.buf[c.pos] = input + filtered*feedback
	c.pos = (c.pos + 1) % len(c.buf)
	return output
}

// allPass alters phase without changing magnitude; the fixed 0.5 feedback
// is part of the Freeverb design.
type allPass struct {
	buf []float32
	pos int
}

func (a *allPass) process(input float32) float32 {
	const feedback = 0.5
	output := a.buf[a.pos]
	a.buf[a.pos] = input + output*feedback
	a.pos = (a.pos + 1) % len(a.buf)
	return output - input
}
