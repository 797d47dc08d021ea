package audio

import "testing"

func TestRingBufferValidation(t *testing.T) {
	if _, err := NewRingBuffer[float32](0); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := NewRingBuffer[float32](-3); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestRingBufferIndexing(t *testing.T) {
	r, err := NewRingBuffer[int](4)
	if err != nil {
		t.Fatal(err)
	}

	r.Put(0, 10)
	r.Put(1, 11)
	r.Advance()
	if got := r.Get(0); got != 11 {
		t.Errorf("after advance, Get(0): got %v want 11", got)
	}
	// Relative index 3 wraps back around to the old head.
	if got := r.Get(3); got != 10 {
		t.Errorf("Get(3): got %v want 10", got)
	}

	r.Retreat()
	if got := r.Get(0); got != 10 {
		t.Errorf("after retreat, Get(0): got %v want 10", got)
	}
}

func TestQueue(t *testing.T) {
	q, err := NewQueue[int](2)
	if err != nil {
		t.Fatal(err)
	}

	if !q.Empty() {
		t.Error("new queue should be empty")
	}
	if err := q.Push(1); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(2); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(3); err == nil {
		t.Error("expected overflow error on third push")
	}

	if got := q.Pop(); got != 1 {
		t.Errorf("Pop: got %v want 1", got)
	}
	if got := q.Pop(); got != 2 {
		t.Errorf("Pop: got %v want 2", got)
	}
	if !q.Empty() {
		t.Error("queue should be empty after draining")
	}

	// Capacity is restored after draining.
	if err := q.Push(4); err != nil {
		t.Fatal(err)
	}
	if got := q.Pop(); got != 4 {
		t.Errorf("Pop: got %v want 4", got)
	}
}
