package audio

import "fmt"

// NotePattern steps through a character pattern for a single note, advanced
// only by MIDI clock events. Each character covers six clock ticks:
// '0'..'8' plays the step at that loudness (velocity = digit*15), ' ' is a
// rest, and '-' ties the previous step into this one. A note-on is emitted
// on the step's first clock tick; on the sixth, a note-off is emitted
// unless the step was a rest or the next step is a tie. Patterns wrap
// around at the end.
type NotePattern struct {
	note    byte
	pattern string
	t       int
}

const subTicksPerStep = 6

func NewNotePattern(note byte, pattern string) (*NotePattern, error) {
	if pattern == "" {
		return nil, fmt.Errorf("note pattern is empty")
	}
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c >= '0' && c <= '8', c == ' ', c == '-':
		default:
			return nil, fmt.Errorf("invalid pattern character %q at %d", c, i)
		}
	}
	return &NotePattern{note: note, pattern: pattern}, nil
}

func (p *NotePattern) step(clock Event) Event {
	var event Event
	if !clock.IsClock() {
		return event
	}
	switch p.t % subTicksPerStep {
	case 0:
		if c := p.pattern[p.t/subTicksPerStep]; c >= '0' && c <= '8' {
			event = NoteOn(p.note, (c-'0')*15, 0)
		}
		p.t++
	case subTicksPerStep - 1:
		prev := p.pattern[p.t/subTicksPerStep]
		p.t++
		if p.t/subTicksPerStep == len(p.pattern) {
			p.t = 0
		}
		next := p.pattern[p.t/subTicksPerStep]
		if prev != ' ' && next != '-' {
			event = NoteOff(p.note, 127, 0)
		}
	default:
		p.t++
	}
	return event
}

// Pattern runs several note patterns off a shared clock and merges their
// events into one stream, at most one event per tick. The queue is sized to
// the pattern count, which is the most events a single clock tick can
// produce, so it cannot overflow.
type Pattern struct {
	Clock Input[Event]

	patterns []*NotePattern
	queue    *Queue[Event]
	tick     int
	out      Event
}

func NewPattern(patterns ...*NotePattern) (*Pattern, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("pattern needs at least one note pattern")
	}
	queue, err := NewQueue[Event](len(patterns))
	if err != nil {
		return nil, err
	}
	return &Pattern{patterns: patterns, queue: queue}, nil
}

func (p *Pattern) At(tick int) Event {
	if tick != p.tick {
		p.tick = tick
		clock := p.Clock.At(tick)
		for _, pattern := range p.patterns {
			if event := pattern.step(clock); event.Active() {
				if err := p.queue.Push(event); err != nil {
					// Unreachable with the queue sized to len(patterns).
					panic(err)
				}
			}
		}
		p.out = Event{}
		if !p.queue.Empty() {
			p.out = p.queue.Pop()
		}
	}
	return p.out
}
