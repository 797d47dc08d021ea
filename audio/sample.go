package audio

// Sample is one stereo frame. Values are not clamped anywhere implicitly;
// range control is an explicit operation (see Clip).
type Sample struct {
	Left, Right float32
}

// Mix returns a sample with the given value on both channels.
func Mix(v float32) Sample {
	return Sample{Left: v, Right: v}
}

// Add returns the per-channel sum of s and x.
func (s Sample) Add(x Sample) Sample {
	return Sample{Left: s.Left + x.Left, Right: s.Right + x.Right}
}

// Scale returns s with both channels multiplied by f.
func (s Sample) Scale(f float32) Sample {
	return Sample{Left: s.Left * f, Right: s.Right * f}
}

// Swap returns s with the channels exchanged.
func (s Sample) Swap() Sample {
	return Sample{Left: s.Right, Right: s.Left}
}
