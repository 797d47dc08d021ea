package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrdg/modular/audio"
)

func renderProps(props *audio.Props, w io.Writer) {
	keys := props.Keys()
	if len(keys) == 0 {
		fmt.Fprintln(w, "patch has no tunable properties")
		return
	}

	var maxNameLen int
	for _, key := range keys {
		if len(key) > maxNameLen {
			maxNameLen = len(key)
		}
	}

	for _, key := range keys {
		value, err := props.Get(key)
		if err != nil {
			continue
		}
		padding := strings.Repeat(" ", maxNameLen-len(key))
		fmt.Fprintf(w, "%s%s  %v\n", colorize(key, colorBlue), padding, value)
	}
}

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func colorize(text string, color int) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}
