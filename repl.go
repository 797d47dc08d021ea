package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mrdg/modular/audio"
)

type env struct {
	patchName string
	cfg       patchConfig
	patch     *patch
	player    *audio.Player
}

func repl(env *env, out io.Writer) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintf(out, "playing %s; type 'help' for commands, ctrl-d to quit\n", env.patchName)
	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := eval(env, out, line); err != nil {
			fmt.Fprintln(out, err)
		}
	}
}

func eval(env *env, out io.Writer, line string) error {
	parts := strings.Fields(line)
	name, args := parts[0], parts[1:]
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if len(args) < cmd.minArgs {
			return fmt.Errorf("%s: not enough arguments: %s", cmd.name, cmd.usage)
		}
		if err := cmd.run(env, out, args); err != nil {
			return fmt.Errorf("%s error: %w", cmd.name, err)
		}
		return nil
	}
	return fmt.Errorf("unknown command: %s", name)
}
