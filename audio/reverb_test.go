package audio

import "testing"

func TestReverbDryPassThrough(t *testing.T) {
	r := NewReverb()
	r.In.Connect(impulse())
	r.Wet.Set(0)
	r.Dry.Set(0.5) // dry path is scaled by 2
	r.RoomSize.Set(0.5)

	if got := r.At(1); got.Left != 1 || got.Right != 1 {
		t.Errorf("tick 1: want dry impulse on both channels, got %+v", got)
	}
	for tick := 2; tick <= 100; tick++ {
		if got := r.At(tick); got.Left != 0 || got.Right != 0 {
			t.Fatalf("tick %d: dry-only output should be silent, got %+v", tick, got)
		}
	}
}

func TestReverbTail(t *testing.T) {
	r := NewReverb()
	r.In.Connect(impulse())
	r.Wet.Set(1)
	r.Dry.Set(0)
	r.RoomSize.Set(0.8)
	r.Damp.Set(0.2)
	r.StereoW.Set(1)

	// The wet path is silent until the shortest comb line (1116 samples)
	// has filled, then rings for a long time.
	var early, late float32
	for tick := 1; tick <= 5*SampleRate; tick++ {
		s := r.At(tick)
		mag := s.Left
		if mag < 0 {
			mag = -mag
		}
		if mag > 10 {
			t.Fatalf("tick %d: reverb blew up: %+v", tick, s)
		}
		switch {
		case tick > 1116 && tick <= SampleRate:
			if mag > early {
				early = mag
			}
		case tick > 4*SampleRate:
			if mag > late {
				late = mag
			}
		}
	}
	if early == 0 {
		t.Fatal("no reverb tail in the first second")
	}
	if late >= early {
		t.Errorf("tail should decay: first second peak %v, fifth second peak %v", early, late)
	}
}

func TestReverbStereoDecorrelation(t *testing.T) {
	r := NewReverb()
	r.In.Connect(impulse())
	r.Wet.Set(1)
	r.Dry.Set(0)
	r.RoomSize.Set(0.5)
	r.StereoW.Set(1)

	// The right channel's delay lines are longer, so the two channels must
	// differ somewhere in the early response.
	differs := false
	for tick := 1; tick <= 4000; tick++ {
		if s := r.At(tick); s.Left != s.Right {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("left and right channels are identical")
	}
}
