package audio

import "math"

type envelopeState int

const (
	stateAttack envelopeState = iota
	stateDecay
	stateSustain
	stateRelease
)

// ADSR is a monophonic envelope generator driven by an event stream.
// Attack, Decay and Release parameters are in milliseconds; Sustain is a
// level in [0, 1]. A note-on while another note is held is treated as a
// legato retrigger: pitch may glide elsewhere, but the envelope does not
// restart its attack.
type ADSR struct {
	In      Input[Event]
	Attack  Input[float32]
	Decay   Input[float32]
	Sustain Input[float32]
	Release Input[float32]

	state envelopeState
	value float32
	note  byte
	tick  int
}

func NewADSR() *ADSR {
	return &ADSR{state: stateSustain}
}

func (a *ADSR) At(tick int) float32 {
	if tick != a.tick {
		a.tick = tick
		event := a.In.At(tick)
		if event.IsNoteOn() {
			legato := a.note != 0
			a.note = event.Data1
			if !legato {
				a.state = stateAttack
			}
		} else if event.IsNoteOff() && event.Data1 == a.note {
			a.note = 0
			a.state = stateRelease
		}
		switch a.state {
		case stateAttack:
			a.value += 1000 / a.Attack.At(tick) * DT
			if a.value >= 1 {
				a.value = 1
				a.state = stateDecay
			}
		case stateDecay:
			sustain := a.Sustain.At(tick)
			decay := a.Decay.At(tick)
			a.value = sustain + (a.value-sustain)*float32(math.Pow(0.01, float64(DT*1000/decay)))
		case stateSustain:
			// Holds: 0 until the first note, the sustain level after a
			// decay.
		case stateRelease:
			a.value -= 1000 / a.Release.At(tick) * DT
			if a.value <= 0 {
				a.value = 0
				a.state = stateSustain
			}
		}
	}
	return a.value
}
