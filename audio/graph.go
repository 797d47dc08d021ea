package audio

// Output is the capability every node exposes: produce a value for a given
// tick. Implementations must be idempotent within a tick: pulling the same
// tick twice returns the same value without recomputing.
//
// Tick 0 is reserved as the "never pulled" state; hosts pull the graph
// starting at tick 1.
type Output[T any] interface {
	At(tick int) T
}

// Value is a settable constant. It is the simplest Output: it ignores the
// tick entirely.
type Value[T any] struct {
	v T
}

func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

func (v *Value[T]) Set(x T) { v.v = x }

func (v *Value[T]) At(int) T { return v.v }

// Input is a node's socket: either a constant or a wired source. The zero
// value is a valid constant-zero input, so node types can expose Input
// fields without any setup. An Input is itself an Output, which keeps
// composition uniform.
type Input[T any] struct {
	value  T
	source Output[T]
}

// Set binds the input to a constant, detaching any wired source.
func (in *Input[T]) Set(v T) {
	in.source = nil
	in.value = v
}

// Connect wires the input to src. Edges are plain references: the graph
// must stay acyclic, which is the wiring code's responsibility; a cycle
// recurses forever.
func (in *Input[T]) Connect(src Output[T]) {
	in.source = src
}

func (in *Input[T]) At(tick int) T {
	if in.source != nil {
		return in.source.At(tick)
	}
	return in.value
}

// Connect wires src into in. Equivalent to in.Connect(src); reads better
// when wiring a patch top to bottom.
func Connect[T any](src Output[T], in *Input[T]) {
	in.Connect(src)
}

// Func memoizes an arbitrary process function as a graph node. The function
// is invoked at most once per tick; it should pull whatever inputs it needs
// at the tick it is given. This is how ad-hoc composites (whole drum voices,
// mixers) are built without declaring a node type.
type Func[T any] struct {
	tick int
	out  T
	fn   func(tick int) T
}

func NewFunc[T any](fn func(tick int) T) *Func[T] {
	return &Func[T]{fn: fn}
}

func (f *Func[T]) At(tick int) T {
	if tick != f.tick {
		f.tick = tick
		f.out = f.fn(tick)
	}
	return f.out
}
