package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mrdg/modular/audio"
)

func main() {
	var (
		patchName = flag.String("patch", "kick", "patch to build: "+fmt.Sprint(patchNames()))
		out       = flag.String("o", "out.wav", "output file for rendering")
		seconds   = flag.Float64("seconds", 2, "render length in seconds")
		play      = flag.Bool("play", false, "play live instead of rendering; opens a REPL")
		sounds    = flag.String("sounds", "", "glob of WAV files for the beat patch")
	)
	flag.Parse()

	cfg := patchConfig{}
	if *sounds != "" {
		files, err := filepath.Glob(*sounds)
		if err != nil {
			log.Fatal(err)
		}
		cfg.sounds = files
	}

	p, err := buildPatch(*patchName, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if !*play {
		frames := int(*seconds * audio.SampleRate)
		if err := audio.RenderFile(*out, p.out, frames); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %v frames to %s\n", frames, *out)
		return
	}

	player, err := audio.NewPlayer(p.out)
	if err != nil {
		log.Fatal(err)
	}
	if err := player.Start(); err != nil {
		log.Fatal(err)
	}

	env := &env{
		patchName: *patchName,
		cfg:       cfg,
		patch:     p,
		player:    player,
	}
	if err := repl(env, os.Stdout); err != nil {
		fmt.Println(err)
	}
	if err := player.Stop(); err != nil {
		log.Fatal(err)
	}
}
