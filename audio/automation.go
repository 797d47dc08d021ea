package audio

import "github.com/mrdg/modular/curve"

// Automation drives a float parameter from a curve script, one value per
// tick. See package curve for the script syntax.
type Automation struct {
	cursor *curve.Cursor
	tick   int
	out    float32
}

func NewAutomation(script string) (*Automation, error) {
	prog, err := curve.Parse(script)
	if err != nil {
		return nil, err
	}
	return &Automation{cursor: prog.Cursor(SampleRate)}, nil
}

// MustAutomation is for literal scripts in patch code.
func MustAutomation(script string) *Automation {
	a, err := NewAutomation(script)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Automation) At(tick int) float32 {
	if tick != a.tick {
		a.tick = tick
		a.out = a.cursor.Next()
	}
	return a.out
}

// Reset rewinds the curve to its start.
func (a *Automation) Reset() {
	a.cursor.Reset()
}
