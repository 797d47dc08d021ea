package audio

// Rand is a xorshift128+ generator (Sebastiano Vigna's variant). Each node
// that needs entropy owns its own generator instead of sharing process-wide
// state, so runs are reproducible and nodes stay independent.
type Rand struct {
	s0, s1 uint64
}

// defaultSeed is an arbitrary non-zero constant; xorshift state must not be
// all zero.
const defaultSeed = 0xC0DEC0DEC0DEC0DE

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Rand{s1: seed}
}

func (r *Rand) Next() uint64 {
	result := r.s0 + r.s1
	s1 := r.s0 ^ (r.s0 << 23)
	r.s0 = r.s1
	r.s1 = s1 ^ r.s1 ^ (s1 >> 18) ^ (r.s1 >> 5)
	return result
}

// Float returns a value in [0, 1].
func (r *Rand) Float() float32 {
	return float32(r.Next()) / float32(^uint64(0))
}
