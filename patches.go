package main

import (
	"fmt"
	"sort"

	"github.com/mrdg/modular/audio"
)

// A patch wires a graph and exposes its tunable parameters. Graph state is
// consumed as the graph is pulled, so a fresh patch is built for every
// render or playback session.
type patch struct {
	out   audio.Output[audio.Sample]
	props *audio.Props
}

type patchConfig struct {
	sounds []string // WAV files for the beat patch
}

var patches = map[string]func(patchConfig) (*patch, error){
	"kick":  kickPatch,
	"snare": snarePatch,
	"bass":  bassPatch,
	"organ": organPatch,
	"beat":  beatPatch,
}

func buildPatch(name string, cfg patchConfig) (*patch, error) {
	build, ok := patches[name]
	if !ok {
		return nil, fmt.Errorf("unknown patch %q (have %v)", name, patchNames())
	}
	return build(cfg)
}

func patchNames() []string {
	names := make([]string, 0, len(patches))
	for name := range patches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// kickPatch is a sine drum: the oscillator frequency sweeps down while a
// short amplitude curve shapes the hit.
func kickPatch(patchConfig) (*patch, error) {
	osc := audio.NewOsc()
	osc.Freq.Connect(audio.MustAutomation("130 45/.1"))

	amp := audio.NewGain()
	amp.In.Connect(osc)
	amp.Amount.Connect(audio.MustAutomation("0 .9/.01 .3/.2 0/.4"))

	out := audio.NewFunc(func(t int) audio.Sample {
		return audio.Pan(amp.At(t), 0)
	})
	return &patch{out: out, props: audio.NewProps()}, nil
}

// snarePatch layers a fast pitch-swept head tone with a resonated noise
// tail. The head and tail noise generators are seeded differently so they
// stay uncorrelated.
func snarePatch(patchConfig) (*patch, error) {
	head := audio.NewOsc()
	head.Freq.Connect(audio.MustAutomation("4000 4000/.001 400/.002 200/.01"))
	headEnv := audio.MustAutomation("0 1.3/.0002 .15/.05 0/.05")

	noise := audio.NewNoise()
	rattle := audio.NewNoiseSeeded(0x9E3779B97F4A7C15)
	res := audio.NewResonator()
	res.In.Connect(noise)
	res.Freq.Set(0.5)
	res.Sensitivity.Set(0.3)
	tailEnv := audio.MustAutomation("0 .9/.03 .05/.05 0/.1")

	out := audio.NewFunc(func(t int) audio.Sample {
		headOut := audio.Clip(head.At(t) * headEnv.At(t))
		tailOut := (res.At(t)*0.6 + rattle.At(t)*0.4) * tailEnv.At(t)
		return audio.Pan(headOut+tailOut, 0)
	})
	return &patch{out: out, props: audio.NewProps()}, nil
}

// bassPatch is a sequenced monophonic bass line: step patterns drive pitch
// (with glide on overlapping notes), velocity and an ADSR, through a saw
// oscillator, low-pass filter, stereo delay and reverb.
func bassPatch(patchConfig) (*patch, error) {
	props := audio.NewProps()
	bpm := props.MustRegister("bpm", audio.SetFloat(20, 300), 120)
	cutoff := props.MustRegister("cutoff", audio.SetFloat(0.001, 1), 0.15)
	attack := props.MustRegister("env.attack", audio.SetEnvParam, 4)
	decay := props.MustRegister("env.decay", audio.SetEnvParam, 180)
	sustain := props.MustRegister("env.sustain", audio.SetUnit, 0.3)
	release := props.MustRegister("env.release", audio.SetEnvParam, 60)
	feedback := props.MustRegister("delay.feedback", audio.SetUnit, 0.4)
	room := props.MustRegister("reverb.room", audio.SetUnit, 0.5)
	damp := props.MustRegister("reverb.damp", audio.SetUnit, 0.4)

	clock := audio.NewClock()
	clock.BPM.Connect(bpm)

	steps, err := notePatterns(map[byte]string{
		audio.C3:  "8--   5-    ",
		audio.Eb3: "   4--      ",
		audio.G3:  "         6--",
	})
	if err != nil {
		return nil, err
	}
	pattern, err := audio.NewPattern(steps...)
	if err != nil {
		return nil, err
	}
	pattern.Clock.Connect(clock)

	freq := audio.NewFrequency()
	freq.In.Connect(pattern)
	vel := audio.NewVelocity()
	vel.In.Connect(pattern)
	env := audio.NewADSR()
	env.In.Connect(pattern)
	env.Attack.Connect(attack)
	env.Decay.Connect(decay)
	env.Sustain.Connect(sustain)
	env.Release.Connect(release)

	saw := audio.NewSaw()
	saw.Freq.Connect(freq)
	lp := audio.NewLowPass()
	lp.In.Connect(saw)
	lp.Cutoff.Connect(cutoff)

	voice := audio.NewFunc(func(t int) float32 {
		return audio.Clip(lp.At(t) * env.At(t) * vel.At(t))
	})

	delay, err := audio.NewDelay(audio.SampleRate / 3)
	if err != nil {
		return nil, err
	}
	delay.In.Connect(voice)
	delay.Feedback.Connect(feedback)
	delay.Wet.Set(0.4)
	delay.Dry.Set(1)
	delay.StereoW.Set(0.6)

	reverb := audio.NewReverb()
	reverb.In.Connect(audio.NewFunc(func(t int) float32 {
		return audio.Mono(delay.At(t))
	}))
	reverb.RoomSize.Connect(room)
	reverb.Damp.Connect(damp)
	reverb.Wet.Set(0.1)
	reverb.Dry.Set(0.4)
	reverb.StereoW.Set(1)

	return &patch{out: reverb, props: props}, nil
}

// organPatch runs two oscillators an octave apart through a rotary speaker.
func organPatch(patchConfig) (*patch, error) {
	props := audio.NewProps()
	bpm := props.MustRegister("bpm", audio.SetFloat(20, 300), 90)
	speed := props.MustRegister("rotor.speed", audio.SetFloat(0, 4), 1)
	level := props.MustRegister("level", audio.SetUnit, 0.5)

	clock := audio.NewClock()
	clock.BPM.Connect(bpm)

	steps, err := notePatterns(map[byte]string{
		audio.C4: "8-----      8---  ",
		audio.G4: "      5---        ",
	})
	if err != nil {
		return nil, err
	}
	pattern, err := audio.NewPattern(steps...)
	if err != nil {
		return nil, err
	}
	pattern.Clock.Connect(clock)

	freq := audio.NewFrequency()
	freq.In.Connect(pattern)
	env := audio.NewADSR()
	env.In.Connect(pattern)
	env.Attack.Set(20)
	env.Decay.Set(400)
	env.Sustain.Set(0.8)
	env.Release.Set(150)

	lower := audio.NewOsc()
	lower.Freq.Connect(freq)
	upper := audio.NewOsc()
	upper.Freq.Connect(audio.NewFunc(func(t int) float32 {
		return freq.At(t) * 2
	}))

	leslie := audio.NewLeslie()
	leslie.In.Connect(audio.NewFunc(func(t int) float32 {
		return (lower.At(t) + upper.At(t)*0.5) * env.At(t) * level.At(t)
	}))
	leslie.Speed.Connect(speed)

	return &patch{out: leslie, props: props}, nil
}

// beatPatch maps WAV files onto step patterns: the first sound gets a
// four-on-the-floor kick pattern, the second a backbeat, further sounds an
// off-beat pattern. Requires -sounds.
func beatPatch(cfg patchConfig) (*patch, error) {
	if len(cfg.sounds) == 0 {
		return nil, fmt.Errorf("the beat patch needs WAV files, pass them with -sounds")
	}
	defaultSteps := []string{
		"8  8  8  8  ",
		"   6     6  ",
		" 4  4  4  4 ",
	}

	props := audio.NewProps()
	bpm := props.MustRegister("bpm", audio.SetFloat(20, 300), 120)
	level := props.MustRegister("level", audio.SetUnit, 0.8)

	clock := audio.NewClock()
	clock.BPM.Connect(bpm)

	var steps []*audio.NotePattern
	var samplers []*audio.Sampler
	for i, file := range cfg.sounds {
		snd, err := audio.LoadSound(file)
		if err != nil {
			return nil, err
		}
		note := audio.C4 + byte(i)
		sampler, err := audio.NewSampler(snd, note)
		if err != nil {
			return nil, err
		}
		step, err := audio.NewNotePattern(note, defaultSteps[i%len(defaultSteps)])
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		samplers = append(samplers, sampler)
	}

	pattern, err := audio.NewPattern(steps...)
	if err != nil {
		return nil, err
	}
	pattern.Clock.Connect(clock)
	for _, sampler := range samplers {
		sampler.In.Connect(pattern)
	}

	out := audio.NewFunc(func(t int) audio.Sample {
		var sum audio.Sample
		for _, sampler := range samplers {
			sum = sum.Add(sampler.At(t))
		}
		return sum.Scale(level.At(t))
	})
	return &patch{out: out, props: props}, nil
}

func notePatterns(lines map[byte]string) ([]*audio.NotePattern, error) {
	notes := make([]byte, 0, len(lines))
	for note := range lines {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })

	var steps []*audio.NotePattern
	for _, note := range notes {
		step, err := audio.NewNotePattern(note, lines[note])
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}
