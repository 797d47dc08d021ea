package curve

import (
	"fmt"
	"strconv"
)

// segment is one fully validated script token: jump to target, or ramp to
// target over duration seconds.
type segment struct {
	target   float32
	duration float32
	ramp     bool
}

// Program is a parsed, immutable automation script.
type Program struct {
	segments []segment
}

// Parse validates the whole script up front so malformed automation fails
// at load time, not mid-playback.
func Parse(input string) (*Program, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := parser{tokens: tokens}
	return p.parse()
}

type parser struct {
	pos    int
	tokens []token
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) peek() token {
	t := p.next()
	p.pos--
	return t
}

func (p *parser) parse() (*Program, error) {
	prog := &Program{}
	for token := p.next(); token.typ != typeEOF; token = p.next() {
		if token.typ != typeNumber {
			return nil, unexpected(token)
		}
		target, err := number(token)
		if err != nil {
			return nil, err
		}
		seg := segment{target: target}
		if p.peek().typ == typeSlash {
			p.next()
			t := p.next()
			if t.typ != typeNumber {
				return nil, unexpected(t)
			}
			duration, err := number(t)
			if err != nil {
				return nil, err
			}
			if duration < 0 {
				return nil, fmt.Errorf("negative ramp duration %q at position %d", t.text, t.pos)
			}
			seg.duration = duration
			seg.ramp = true
		}
		prog.segments = append(prog.segments, seg)
	}
	return prog, nil
}

func number(t token) (float32, error) {
	f, err := strconv.ParseFloat(t.text, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q at position %d: %w", t.text, t.pos, err)
	}
	return float32(f), nil
}

func unexpected(t token) error {
	return fmt.Errorf("unexpected token %q at position %d", t.text, t.pos)
}

// Cursor interprets a program one sample at a time. The zero-th segment is
// entered on the first Next call. A finished ramp snaps exactly to its
// target before the next segment is read, a zero-duration ramp resolves
// instantly, and the end of the script freezes the last value.
type Cursor struct {
	prog       *Program
	sampleRate float32

	pos       int
	value     float32
	delta     float32
	target    float32
	remaining int
}

// Cursor returns a fresh interpreter for the program. Each graph node needs
// its own cursor; programs are immutable and shareable.
func (p *Program) Cursor(sampleRate float32) *Cursor {
	return &Cursor{prog: p, sampleRate: sampleRate}
}

// Next advances one sample and returns the current value.
func (c *Cursor) Next() float32 {
	if c.remaining == 0 {
		c.advance()
	}
	c.remaining--
	c.value += c.delta
	return c.value
}

func (c *Cursor) advance() {
	c.value = c.target
	if c.pos == len(c.prog.segments) {
		c.delta = 0
		c.remaining = 1
		return
	}
	seg := c.prog.segments[c.pos]
	c.pos++
	c.target = seg.target

	ticks := 0
	if seg.ramp {
		ticks = int(seg.duration * c.sampleRate)
	}
	if ticks <= 0 {
		// Jumps and zero-duration ramps resolve on this very sample.
		c.value = seg.target
		c.delta = 0
		c.remaining = 1
		return
	}
	c.delta = (seg.target - c.value) / float32(ticks)
	c.remaining = ticks
}

// Reset rewinds the cursor to its initial state.
func (c *Cursor) Reset() {
	c.pos = 0
	c.value = 0
	c.delta = 0
	c.target = 0
	c.remaining = 0
}
