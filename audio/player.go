package audio

import (
	"github.com/gordonklaus/portaudio"
)

const playbackBufferSize = 512

// Player plays a graph live through the default output device. The graph is
// pulled from the audio callback, so nothing else may pull it while the
// player runs; live control goes through Props parameters.
type Player struct {
	stream *portaudio.Stream
	src    Output[Sample]
	tick   int
}

func NewPlayer(src Output[Sample]) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	p := &Player{src: src}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, playbackBufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	p.stream = stream
	return p, nil
}

func (p *Player) process(out [][]float32) {
	for i := range out[0] {
		p.tick++
		s := p.src.At(p.tick)
		out[0][i] = s.Left
		out[1][i] = s.Right
	}
}

func (p *Player) Start() error {
	return p.stream.Start()
}

func (p *Player) Stop() error {
	if err := p.stream.Close(); err != nil {
		return err
	}
	return portaudio.Terminate()
}
