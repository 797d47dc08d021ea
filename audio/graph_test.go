package audio

import "testing"

func TestFuncMemoization(t *testing.T) {
	calls := 0
	n := NewFunc(func(tick int) float32 {
		calls++
		return float32(tick)
	})

	for i := 0; i < 3; i++ {
		if got := n.At(1); got != 1 {
			t.Fatalf("At(1): got %v want 1", got)
		}
	}
	if calls != 1 {
		t.Errorf("expected one computation for tick 1, got %d", calls)
	}

	if got := n.At(2); got != 2 {
		t.Fatalf("At(2): got %v want 2", got)
	}
	if calls != 2 {
		t.Errorf("expected two computations after a new tick, got %d", calls)
	}
}

func TestFanOutPullsOnce(t *testing.T) {
	calls := 0
	shared := NewFunc(func(tick int) float32 {
		calls++
		return 0.5
	})

	a := NewGain()
	a.In.Connect(shared)
	a.Amount.Set(1)
	b := NewGain()
	b.In.Connect(shared)
	b.Amount.Set(2)

	if got := a.At(1); got != 0.5 {
		t.Errorf("a.At(1): got %v want 0.5", got)
	}
	if got := b.At(1); got != 1.0 {
		t.Errorf("b.At(1): got %v want 1.0", got)
	}
	if calls != 1 {
		t.Errorf("shared node computed %d times for one tick, want 1", calls)
	}
}

func TestInput(t *testing.T) {
	var in Input[float32]
	if got := in.At(1); got != 0 {
		t.Errorf("zero input: got %v want 0", got)
	}

	in.Set(3)
	if got := in.At(1); got != 3 {
		t.Errorf("constant input: got %v want 3", got)
	}

	v := NewValue[float32](7)
	in.Connect(v)
	if got := in.At(1); got != 7 {
		t.Errorf("wired input: got %v want 7", got)
	}

	v.Set(9)
	if got := in.At(2); got != 9 {
		t.Errorf("wired input after source change: got %v want 9", got)
	}

	// Set detaches the source again.
	in.Set(4)
	if got := in.At(3); got != 4 {
		t.Errorf("re-bound constant: got %v want 4", got)
	}
}
