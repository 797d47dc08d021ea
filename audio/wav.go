package audio

import (
	"fmt"
	"io"
	"math"
	"os"

	wav "github.com/youpy/go-wav"
)

const renderBatch = 4096

// WriteWAV pulls the graph at ticks 1..frames and writes the result to w as
// canonical 16-bit stereo PCM at 44100 Hz. Tick 0 is never pulled; the
// first frame of the file is the graph's output at tick 1.
func WriteWAV(w io.Writer, src Output[Sample], frames int) error {
	if frames < 0 {
		return fmt.Errorf("wav: negative frame count %d", frames)
	}
	writer := wav.NewWriter(w, uint32(frames), 2, SampleRate, 16)
	buf := make([]wav.Sample, 0, renderBatch)
	for t := 1; t <= frames; t++ {
		s := src.At(t)
		buf = append(buf, wav.Sample{Values: [2]int{quantize(s.Left), quantize(s.Right)}})
		if len(buf) == renderBatch {
			if err := writer.WriteSamples(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		return writer.WriteSamples(buf)
	}
	return nil
}

// RenderFile writes frames ticks of src to a WAV file at path.
func RenderFile(path string, src Output[Sample], frames int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteWAV(f, src, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// quantize maps [-1, 1] to the int16 range, rounding to nearest and
// clamping anything outside.
func quantize(v float32) int {
	q := math.Round(float64(v) * 32767)
	if q > math.MaxInt16 {
		q = math.MaxInt16
	}
	if q < math.MinInt16 {
		q = math.MinInt16
	}
	return int(q)
}
