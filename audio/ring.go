package audio

import "fmt"

// RingBuffer is fixed-capacity circular storage indexed relative to a
// rotating head. It is allocated once at construction and never resized, so
// it is safe to use on the per-sample path.
type RingBuffer[T any] struct {
	data []T
	head int
}

func NewRingBuffer[T any](size int) (*RingBuffer[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring buffer size must be > 0: %d", size)
	}
	return &RingBuffer[T]{data: make([]T, size)}, nil
}

// mustRingBuffer is for fixed sizes known correct at compile time.
func mustRingBuffer[T any](size int) *RingBuffer[T] {
	r, err := NewRingBuffer[T](size)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *RingBuffer[T]) Len() int {
	return len(r.data)
}

// Get returns the element i positions after the head.
func (r *RingBuffer[T]) Get(i int) T {
	return r.data[(r.head+i)%len(r.data)]
}

// Put stores v at i positions after the head.
func (r *RingBuffer[T]) Put(i int, v T) {
	r.data[(r.head+i)%len(r.data)] = v
}

// Advance rotates the head forward one position.
func (r *RingBuffer[T]) Advance() {
	r.head = (r.head + 1) % len(r.data)
}

// Retreat rotates the head back one position.
func (r *RingBuffer[T]) Retreat() {
	r.head = (r.head + len(r.data) - 1) % len(r.data)
}

// Queue is a bounded FIFO on top of a RingBuffer. Capacity is fixed at
// construction; callers size it to the maximum number of simultaneous
// elements. Push reports overflow instead of overwriting.
type Queue[T any] struct {
	buf  *RingBuffer[T]
	size int
}

func NewQueue[T any](capacity int) (*Queue[T], error) {
	buf, err := NewRingBuffer[T](capacity)
	if err != nil {
		return nil, fmt.Errorf("queue: %w", err)
	}
	return &Queue[T]{buf: buf}, nil
}

func (q *Queue[T]) Push(v T) error {
	if q.size == q.buf.Len() {
		return fmt.Errorf("queue overflow: capacity %d", q.buf.Len())
	}
	q.buf.Put(q.size, v)
	q.size++
	return nil
}

func (q *Queue[T]) Pop() T {
	v := q.buf.Get(0)
	q.buf.Advance()
	q.size--
	return v
}

func (q *Queue[T]) Empty() bool {
	return q.size == 0
}
