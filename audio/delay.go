package audio

import "fmt"

// Delay is a feedback delay line. Each tick it reads two taps (the head,
// and half the buffer later for a stereo offset), feeds the head tap back
// into the line, and mixes the wet taps with the dry input. The head tap is
// attenuated by feedback squared so repeats decay faster on one side.
type Delay struct {
	In       Input[float32]
	Feedback Input[float32]
	Wet      Input[float32]
	Dry      Input[float32]
	StereoW  Input[float32]

	buf  *RingBuffer[float32]
	tick int
	out  Sample
}

// NewDelay creates a delay line of size ticks.
func NewDelay(size int) (*Delay, error) {
	buf, err := NewRingBuffer[float32](size)
	if err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}
	return &Delay{buf: buf}, nil
}

func (d *Delay) At(tick int) Sample {
	if tick != d.tick {
		d.tick = tick
		in := d.In.At(tick)
		feedback := d.Feedback.At(tick)
		left := d.buf.Get(0) * (feedback * feedback)
		right := d.buf.Get(d.buf.Len()/2) * feedback
		d.buf.Put(0, in+left)
		d.buf.Advance()
		wet := Width(Sample{Left: left, Right: right}, d.StereoW.At(tick)).Scale(d.Wet.At(tick))
		d.out = wet.Add(Mix(in).Scale(d.Dry.At(tick)))
	}
	return d.out
}

// Resonator is a two-state linear recurrence rung twice per tick. Running
// the recurrence at half the normalized frequency per substep extends the
// range over which the feedback term stays stable.
type Resonator struct {
	In          Input[float32]
	Freq        Input[float32]
	Sensitivity Input[float32]

	s0, s1 float32
	tick   int
}

func NewResonator() *Resonator {
	return &Resonator{}
}

func (r *Resonator) At(tick int) float32 {
	if tick != r.tick {
		r.tick = tick
		in := r.In.At(tick)
		freq := r.Freq.At(tick)
		sens := r.Sensitivity.At(tick)
		for i := 0; i < 2; i++ {
			r.s0 = r.s0 - r.s1*freq + (in-r.s0)*freq*sens
			r.s1 = r.s1 + r.s0*freq
		}
	}
	return r.s1
}
