package audio

import (
	"math"
	"testing"
)

func TestSawRange(t *testing.T) {
	for _, freq := range []float32{20, 110, 440, 2000, 8000, 15000} {
		saw := NewSaw()
		saw.Freq.Set(freq)
		for tick := 1; tick <= 44100; tick++ {
			v := saw.At(tick)
			if v < -1 || v > 1 {
				t.Fatalf("saw at %v Hz out of range at tick %d: %v", freq, tick, v)
			}
		}
	}
}

func TestSquareRange(t *testing.T) {
	for _, freq := range []float32{20, 440, 5000, 15000} {
		square := NewSquare()
		square.Freq.Set(freq)
		for tick := 1; tick <= 44100; tick++ {
			if v := square.At(tick); v != 1 && v != -1 {
				t.Fatalf("square at %v Hz not in {-1, 1} at tick %d: %v", freq, tick, v)
			}
		}
	}
}

func TestOscAmplitude(t *testing.T) {
	osc := NewOsc()
	osc.Freq.Set(440)
	var min, max float32
	for tick := 1; tick <= 44100; tick++ {
		v := osc.At(tick)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max < 0.99 || max > 1.01 {
		t.Errorf("sine peak: got %v want ~1", max)
	}
	if min > -0.99 || min < -1.01 {
		t.Errorf("sine trough: got %v want ~-1", min)
	}
}

func TestOscFrequency(t *testing.T) {
	// Count zero crossings over a second; a 440 Hz sine has 880.
	osc := NewOsc()
	osc.Freq.Set(440)
	crossings := 0
	prev := osc.At(1)
	for tick := 2; tick <= 44100; tick++ {
		v := osc.At(tick)
		if (prev < 0) != (v < 0) {
			crossings++
		}
		prev = v
	}
	if crossings < 875 || crossings > 885 {
		t.Errorf("zero crossings: got %d want ~880", crossings)
	}
}

func TestNoiseRangeAndDeterminism(t *testing.T) {
	a := NewNoise()
	b := NewNoise()
	for tick := 1; tick <= 10000; tick++ {
		va, vb := a.At(tick), b.At(tick)
		if va < -1 || va > 1 {
			t.Fatalf("noise out of range at tick %d: %v", tick, va)
		}
		if va != vb {
			t.Fatalf("default-seeded generators diverged at tick %d: %v != %v", tick, va, vb)
		}
	}

	c := NewNoiseSeeded(12345)
	same := 0
	for tick := 1; tick <= 1000; tick++ {
		if a.At(tick) == c.At(tick) {
			same++
		}
	}
	if same > 10 {
		t.Errorf("differently seeded generators coincide too often: %d of 1000", same)
	}
}

func TestNoiseDistribution(t *testing.T) {
	noise := NewNoise()
	var sum float64
	for tick := 1; tick <= 100000; tick++ {
		sum += float64(noise.At(tick))
	}
	if mean := sum / 100000; math.Abs(mean) > 0.02 {
		t.Errorf("noise mean too far from 0: %v", mean)
	}
}
