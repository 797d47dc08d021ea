package audio

import (
	"fmt"
	"sync/atomic"
)

// Props stores a patch's named parameters. Values can be updated from a
// control thread (the REPL) without locks while the audio thread pulls
// them; each parameter doubles as a graph constant via Param. All
// parameters should be registered before the graph starts running.
type Props struct {
	properties map[string]*atomic.Value
	setters    map[string]setter
	keys       []string
}

func NewProps() *Props {
	return &Props{
		properties: make(map[string]*atomic.Value),
		setters:    make(map[string]setter),
	}
}

// Set updates a registered parameter, validating against its range.
func (p *Props) Set(key string, value float64) error {
	prop, ok := p.properties[key]
	if !ok {
		return fmt.Errorf("unknown property %s", key)
	}
	if err := p.setters[key](value, prop); err != nil {
		return fmt.Errorf("set property %s: %w", key, err)
	}
	return nil
}

func (p *Props) Get(key string) (float64, error) {
	prop, ok := p.properties[key]
	if !ok {
		return 0, fmt.Errorf("unknown property %s", key)
	}
	return float64(prop.Load().(float32)), nil
}

// Keys returns parameter names in registration order.
func (p *Props) Keys() []string {
	return p.keys
}

// Register adds a parameter and returns its graph-side view.
func (p *Props) Register(key string, set setter, init float64) (*Param, error) {
	var prop atomic.Value
	p.properties[key] = &prop
	p.setters[key] = set
	p.keys = append(p.keys, key)
	return &Param{v: &prop}, set(init, &prop)
}

func (p *Props) MustRegister(key string, set setter, init float64) *Param {
	param, err := p.Register(key, set, init)
	if err != nil {
		panic(err)
	}
	return param
}

// Param is the audio-thread view of a property: an Output[float32] whose
// value may change between ticks but never mid-load.
type Param struct {
	v *atomic.Value
}

func (p *Param) At(int) float32 {
	return p.v.Load().(float32)
}

type setter func(val float64, dest *atomic.Value) error

// SetUnit accepts values in [0, 1], the range most node parameters use.
var SetUnit = SetFloat(0, 1)

// SetEnvParam accepts envelope stage times in milliseconds.
var SetEnvParam = SetFloat(0.5, 15000)

func SetFloat(min, max float64) setter {
	return func(v float64, dest *atomic.Value) error {
		if v < min || v > max {
			return fmt.Errorf("value is not in valid range %v - %v: %v", min, max, v)
		}
		dest.Store(float32(v))
		return nil
	}
}
