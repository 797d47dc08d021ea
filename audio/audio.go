// Package audio implements a pull-based modular synthesis engine. Signal
// units are nodes in a directed acyclic graph; each node exposes typed
// inputs and a single output, and is evaluated one sample at a time by
// pulling the graph's sink at successive ticks. A node caches the value it
// produced for a tick, so shared upstream nodes are computed exactly once
// per tick no matter how many consumers pull them.
package audio

const (
	// SampleRate is fixed: one tick of logical time is one sample at 44100 Hz.
	SampleRate = 44100

	// DT is the duration of a single tick in seconds.
	DT = 1.0 / float32(SampleRate)
)
