// Command enum is an interactive explorer for enumerable pipelines: every
// input line is a JSON value (an array spreads into a sequence), the loaded
// YAML pipeline is applied, and the resulting elements are printed.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	enumerable "github.com/yaorb/node-enumerable"
	"github.com/yaorb/node-enumerable/pipeline"
)

const (
	appName     = "enum"
	historyFile = ".enum_history"
	promptMain  = ">>> "
)

var banner = appName + " — lazy sequence explorer\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	pipePath := flag.String("p", "", "YAML pipeline file to apply to each input")
	flag.Parse()

	p := &pipeline.Pipeline{}
	if *pipePath != "" {
		data, err := os.ReadFile(*pipePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			os.Exit(1)
		}
		spec, err := pipeline.Load(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			os.Exit(1)
		}
		p, err = pipeline.Compile(spec)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			os.Exit(1)
		}
	}

	os.Exit(repl(p))
}

func repl(p *pipeline.Pipeline) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		if err := runLine(p, trimmed); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		ln.AppendHistory(line)
	}
}

// runLine parses one JSON value, spreads arrays into a sequence, applies
// the pipeline and prints every resulting element.
func runLine(p *pipeline.Pipeline, src string) error {
	var parsed any
	if err := json.Unmarshal([]byte(src), &parsed); err != nil {
		return fmt.Errorf("input is not valid JSON: %w", err)
	}

	var s *enumerable.Sequence
	if arr, ok := parsed.([]any); ok {
		s = enumerable.From(arr)
	} else {
		s = enumerable.FromValues(enumerable.FromGo(parsed))
	}

	out := p.Apply(s)
	err := out.ForEach(func(v enumerable.Value, index int) error {
		fmt.Printf("%s %s\n", green(fmt.Sprintf("[%d]", index)), render(v))
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// render prints nested sequences (e.g. chunk output) by materializing them;
// everything else uses the Value's own rendering.
func render(v enumerable.Value) string {
	if nested, ok := v.AsSequence(); ok {
		items, err := nested.ToSlice()
		if err != nil {
			return red("<error: " + err.Error() + ">")
		}
		parts := make([]string, len(items))
		for i, e := range items {
			parts[i] = render(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return v.String()
}
