package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-valfmt"
	"github.com/chzyer/readline"
)

// repl is the interactive mode of valfmt.
type repl struct {
	engine *valfmt.Engine
	rl     *readline.Instance
	out    io.Writer
}

func newREPL(e *valfmt.Engine) (*repl, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "valfmt> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &repl{engine: e, rl: rl, out: rl.Stdout()}, nil
}

// Run starts the interactive command loop.
func (r *repl) Run() {
	defer r.rl.Close()

	r.printHelp()
	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}
		if !r.exec(line) {
			return
		}
	}
}

// exec runs one command line and reports whether the loop should go on.
func (r *repl) exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "help", "?":
		r.printHelp()
	case "format", "f":
		r.print(formatValue(r.engine, arg))
	case "parse", "p":
		r.print(parseText(r.engine, arg))
	case "unit", "u":
		h, err := r.engine.ParseUnit(arg)
		if err != nil {
			r.print("", err)
			break
		}
		r.print(valfmt.Literal(map[string]any(h)))
	case "settings", "s":
		s := r.engine.Settings()
		fmt.Fprintf(r.out, "format=%q units=%v multiple=%t range=%t formatMultiple=%q formatRange=%q\n",
			s.Format, s.Units, s.AllowMultiple, s.AllowRange, s.FormatMultiple, s.FormatRange)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(r.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (r *repl) print(s string, err error) {
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, s)
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `valfmt commands:
  format <value>  - Render a value (JSON, number, boolean or text)
  parse <text>    - Parse text into a value
  unit <text>     - Show the unit hash of a single formatted scalar
  settings        - Show the engine configuration
  help            - Show this help
  quit            - Exit`)
}
