package audio

import (
	"fmt"
	"io"
	"os"

	wav "github.com/youpy/go-wav"
)

// Sound is a sample buffer loaded from a WAV file.
type Sound struct {
	frames []Sample
	file   string
}

func LoadSound(file string) (*Sound, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", file, err)
	}
	stereo := format.NumChannels > 1

	snd := Sound{file: file}
	for {
		samples, err := r.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load sound %s: %w", file, err)
		}
		for _, sample := range samples {
			left := float32(r.FloatValue(sample, 0))
			right := left
			if stereo {
				right = float32(r.FloatValue(sample, 1))
			}
			snd.frames = append(snd.frames, Sample{Left: left, Right: right})
		}
	}
	return &snd, nil
}

// Sampler plays a sound buffer once each time its note is struck. Velocity
// scales playback level linearly.
type Sampler struct {
	In Input[Event]

	snd     *Sound
	note    byte
	pos     int
	playing bool
	gain    float32
	tick    int
	out     Sample
}

func NewSampler(snd *Sound, note byte) (*Sampler, error) {
	if len(snd.frames) == 0 {
		return nil, fmt.Errorf("sampler: sound %s has no frames", snd.file)
	}
	return &Sampler{snd: snd, note: note}, nil
}

func (s *Sampler) At(tick int) Sample {
	if tick != s.tick {
		s.tick = tick
		if event := s.In.At(tick); event.IsNoteOn() && event.Data1 == s.note {
			s.pos = 0
			s.playing = true
			s.gain = float32(event.Data2) / 127
		}
		s.out = Sample{}
		if s.playing {
			s.out = s.snd.frames[s.pos].Scale(s.gain)
			s.pos++
			if s.pos == len(s.snd.frames) {
				s.playing = false
			}
		}
	}
	return s.out
}
