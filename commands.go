package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mrdg/modular/audio"
)

type command struct {
	name    string
	usage   string
	run     func(env *env, out io.Writer, args []string) error
	minArgs int
}

var commands []command

func init() {
	commands = []command{
		{name: "set", usage: "set <prop> <value>", run: setCommand, minArgs: 2},
		{name: "get", usage: "get <prop>", run: getCommand, minArgs: 1},
		{name: "props", usage: "props", run: propsCommand},
		{name: "render", usage: "render <file> <seconds>", run: renderCommand, minArgs: 2},
		{name: "help", usage: "help", run: helpCommand},
	}
}

func setCommand(env *env, out io.Writer, args []string) error {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}
	return env.patch.props.Set(args[0], value)
}

func getCommand(env *env, out io.Writer, args []string) error {
	value, err := env.patch.props.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, value)
	return nil
}

func propsCommand(env *env, out io.Writer, args []string) error {
	renderProps(env.patch.props, out)
	return nil
}

// renderCommand renders the current patch to a file without interrupting
// playback: it builds a fresh graph and copies the live parameter values
// onto it.
func renderCommand(env *env, out io.Writer, args []string) error {
	seconds, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}
	if seconds <= 0 {
		return fmt.Errorf("render length must be > 0: %v", seconds)
	}
	p, err := buildPatch(env.patchName, env.cfg)
	if err != nil {
		return err
	}
	for _, key := range env.patch.props.Keys() {
		value, err := env.patch.props.Get(key)
		if err != nil {
			return err
		}
		if err := p.props.Set(key, value); err != nil {
			return err
		}
	}
	frames := int(seconds * audio.SampleRate)
	if err := audio.RenderFile(args[0], p.out, frames); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %v frames to %s\n", frames, args[0])
	return nil
}

func helpCommand(env *env, out io.Writer, args []string) error {
	for _, cmd := range commands {
		fmt.Fprintln(out, cmd.usage)
	}
	return nil
}
