package audio

import "testing"

func newTestADSR(events map[int]Event) *ADSR {
	env := NewADSR()
	env.In.Connect(eventAt(events))
	env.Attack.Set(10)
	env.Decay.Set(50)
	env.Sustain.Set(0.5)
	env.Release.Set(20)
	return env
}

func TestADSRSilentAtRest(t *testing.T) {
	env := newTestADSR(nil)
	for tick := 1; tick <= 1000; tick++ {
		if v := env.At(tick); v != 0 {
			t.Fatalf("envelope with no notes should stay at 0, tick %d: %v", tick, v)
		}
	}
}

func TestADSRAttackDecaySustain(t *testing.T) {
	env := newTestADSR(map[int]Event{1: NoteOn(A4, 100, 0)})

	// 10 ms attack is 441 ticks; the value must rise strictly until it
	// reaches 1.
	prev := float32(0)
	reached := 0
	for tick := 1; tick <= 600; tick++ {
		v := env.At(tick)
		if v == 1 {
			reached = tick
			break
		}
		if v <= prev {
			t.Fatalf("attack should rise strictly, tick %d: %v <= %v", tick, v, prev)
		}
		prev = v
	}
	if reached == 0 {
		t.Fatal("attack never reached 1")
	}
	if reached < 400 || reached > 500 {
		t.Errorf("10ms attack peaked at tick %d, want ~441", reached)
	}

	// Decay approaches the sustain level from above.
	for tick := reached + 1; tick <= reached+44100; tick++ {
		v := env.At(tick)
		if v < 0.5-1e-3 {
			t.Fatalf("decay undershot sustain at tick %d: %v", tick, v)
		}
	}
	if v := env.At(reached + 44101); !approxEqual(v, 0.5, 1e-2) {
		t.Errorf("decay should settle at sustain: got %v", v)
	}
}

func TestADSRRelease(t *testing.T) {
	env := newTestADSR(map[int]Event{
		1:    NoteOn(A4, 100, 0),
		2000: NoteOff(A4, 0, 0),
	})
	for tick := 1; tick < 2000; tick++ {
		env.At(tick)
	}

	// 20 ms release is 882 ticks from full level; from the decayed level it
	// is shorter. The value must fall to exactly 0 and stay there.
	prev := env.At(2000)
	for tick := 2001; tick <= 4000; tick++ {
		v := env.At(tick)
		if v > prev {
			t.Fatalf("release should not rise, tick %d: %v > %v", tick, v, prev)
		}
		prev = v
	}
	if prev != 0 {
		t.Errorf("release should end at exactly 0: got %v", prev)
	}
	for tick := 4001; tick <= 5000; tick++ {
		if v := env.At(tick); v != 0 {
			t.Fatalf("envelope should stay at 0 after release, tick %d: %v", tick, v)
		}
	}
}

func TestADSRLegato(t *testing.T) {
	env := newTestADSR(map[int]Event{
		1:    NoteOn(A4, 100, 0),
		2000: NoteOn(C4, 100, 0), // overlapping: no attack restart
	})
	for tick := 1; tick < 2000; tick++ {
		env.At(tick)
	}

	before := env.At(1999)
	after := env.At(2000)
	// A retrigger would reset toward 0 and ramp; legato keeps the value
	// continuous.
	if after < before-0.01 {
		t.Errorf("legato note-on reset the envelope: %v -> %v", before, after)
	}
}

func TestADSRStaleNoteOffIgnored(t *testing.T) {
	env := newTestADSR(map[int]Event{
		1:  NoteOn(A4, 100, 0),
		50: NoteOff(C3, 0, 0), // not the held note
	})
	var v49 float32
	for tick := 1; tick <= 50; tick++ {
		v := env.At(tick)
		if tick == 49 {
			v49 = v
		}
	}
	if v := env.At(51); v <= v49 {
		t.Errorf("stale note-off should not trigger release: %v <= %v", v, v49)
	}
}
