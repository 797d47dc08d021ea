package audio

import "math"

// Event is a 3-byte MIDI message. The zero value has the status high bit
// clear, which means "no event this tick": event streams are ordinary
// Output[Event] values that mostly carry empty events.
type Event struct {
	Status byte
	Data1  byte
	Data2  byte
}

const (
	statusNoteOff = 0x80
	statusNoteOn  = 0x90
	statusClock   = 0xF8
)

func NoteOn(note, velocity, channel byte) Event {
	return Event{Status: statusNoteOn | channel, Data1: note, Data2: velocity}
}

func NoteOff(note, velocity, channel byte) Event {
	return Event{Status: statusNoteOff | channel, Data1: note, Data2: velocity}
}

func ClockTick() Event {
	return Event{Status: statusClock}
}

// Active reports whether the event carries a message at all.
func (e Event) Active() bool {
	return e.Status&0x80 != 0
}

func (e Event) IsNoteOn() bool {
	return e.Status&0xF0 == statusNoteOn
}

func (e Event) IsNoteOff() bool {
	return e.Status&0xF0 == statusNoteOff
}

func (e Event) IsClock() bool {
	return e.Status == statusClock
}

func (e Event) Channel() byte {
	return e.Status & 0x0F
}

// MIDI note numbers for three octaves around middle C.
const (
	C3  byte = 48 + iota // 48
	Db3                  // 49
	D3
	Eb3
	E3
	F3
	Gb3
	G3
	Ab3
	A3
	Bb3
	B3
	C4 // 60, middle C
	Db4
	D4
	Eb4
	E4
	F4
	Gb4
	G4
	Ab4
	A4 // 69, 440 Hz
	Bb4
	B4
	C5
	Db5
	D5
	Eb5
	E5
	F5
	Gb5
	G5
	Ab5
	A5
	Bb5
	B5
)

// NoteFreq converts a MIDI note number to a frequency in Hz, A4 = 440.
func NoteFreq(note byte) float32 {
	return 440 * float32(math.Pow(2, float64(int(note)-69)/12))
}

// Clock emits a MIDI clock event 24 times per beat at the pulled tempo, one
// event per phase wraparound and empty events otherwise.
type Clock struct {
	BPM Input[float32]

	phase float32
	tick  int
	out   Event
}

func NewClock() *Clock {
	return &Clock{phase: 1}
}

func (c *Clock) At(tick int) Event {
	if tick != c.tick {
		c.tick = tick
		c.out = Event{}
		c.phase += c.BPM.At(tick) / 60 * 24 * DT
		if c.phase > 1 {
			c.phase -= 1
			c.out = ClockTick()
		}
	}
	return c.out
}

// Frequency tracks monophonic pitch from an event stream with last-note
// priority. A note-on while another note is held engages an exponential
// glide with a 50 ms time constant instead of snapping; when the glide
// overshoots its target the frequency snaps and the glide factor resets to
// neutral, which also covers the reached-target-exactly case.
type Frequency struct {
	In Input[Event]

	freq   float32
	target float32
	factor float32
	note   byte
	tick   int
}

// glideTime is the portamento time constant in seconds.
const glideTime = 0.05

func NewFrequency() *Frequency {
	return &Frequency{factor: 1}
}

func (f *Frequency) At(tick int) float32 {
	if tick != f.tick {
		f.tick = tick
		event := f.In.At(tick)
		if event.IsNoteOn() {
			glide := f.note != 0
			f.note = event.Data1
			f.target = NoteFreq(f.note)
			if glide {
				f.factor = float32(math.Pow(float64(f.target/f.freq), float64(DT/glideTime)))
			} else {
				f.freq = f.target
				f.factor = 1
			}
		} else if event.IsNoteOff() && event.Data1 == f.note {
			f.note = 0
		}
		f.freq *= f.factor
		if (f.factor > 1 && f.freq > f.target) || (f.factor < 1 && f.freq < f.target) {
			f.freq = f.target
			f.factor = 1
		}
	}
	return f.freq
}

// Velocity latches the velocity of the most recent note-on, normalized to
// [0, 1].
type Velocity struct {
	In Input[Event]

	velocity float32
	tick     int
}

func NewVelocity() *Velocity {
	return &Velocity{}
}

func (v *Velocity) At(tick int) float32 {
	if tick != v.tick {
		v.tick = tick
		if event := v.In.At(tick); event.IsNoteOn() {
			v.velocity = float32(event.Data2) / 127
		}
	}
	return v.velocity
}
