package audio

// Leslie simulates a rotary speaker: two taps sweep across a short delay
// line, driven by opposite phases of a quadrature LFO, and are panned to
// opposite sides. Tap positions are fractional and read with linear
// interpolation.
type Leslie struct {
	In    Input[float32]
	Speed Input[float32]

	buf      *RingBuffer[float32]
	sin, cos float32
	tick     int
	out      Sample
}

const leslieBufLen = 32

func NewLeslie() *Leslie {
	return &Leslie{
		buf: mustRingBuffer[float32](leslieBufLen),
		cos: 1,
	}
}

func (l *Leslie) readLinear(pos float32) float32 {
	lower := int(pos)
	frac := pos - float32(lower)
	return l.buf.Get(lower)*(1-frac) + l.buf.Get(lower+1)*frac
}

func (l *Leslie) At(tick int) Sample {
	if tick != l.tick {
		l.tick = tick
		l.buf.Retreat()
		l.buf.Put(0, l.In.At(tick))
		f := 0.0002 * l.Speed.At(tick)
		l.cos += -l.sin * f
		l.sin += l.cos * f
		near := Pan(l.readLinear(l.sin*15+16), l.cos*0.3)
		far := Pan(l.readLinear(l.sin*-15+16), l.cos*-0.3)
		l.out = near.Add(far)
	}
	return l.out
}
