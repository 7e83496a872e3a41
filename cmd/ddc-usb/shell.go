package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/moffa90/go-ddcci/session"
)

// shell is the interactive mode: one request per line until quit or EOF.
type shell struct {
	rl     *readline.Instance
	runner *runner
}

func newShell(s *session.Session) (*shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ddc> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &shell{
		rl:     rl,
		runner: &runner{s: s, out: rl.Stdout()},
	}, nil
}

// Run reads commands until quit, EOF or ctx is done.
func (sh *shell) Run(ctx context.Context) {
	defer sh.rl.Close()

	sh.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := sh.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if !sh.exec(ctx, input) {
			return
		}
	}
}

// exec runs one shell line and reports whether the shell should continue.
func (sh *shell) exec(ctx context.Context, input string) bool {
	out := sh.runner.out
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "h":
		sh.printHelp()

	case "get", "g":
		if len(args) != 1 {
			fmt.Fprintln(out, "Usage: get <control>")
			return true
		}
		err = sh.runner.getSet(ctx, args[0], session.QueryValue)

	case "set", "s":
		if len(args) != 2 {
			fmt.Fprintln(out, "Usage: set <control> <value>")
			return true
		}
		err = sh.runner.getSet(ctx, args[0], args[1])

	case "quit", "exit", "q":
		return false

	default:
		for _, arg := range parts {
			if err = sh.runner.run(ctx, arg); err != nil {
				break
			}
		}
	}

	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return true
}

func (sh *shell) printHelp() {
	fmt.Fprintln(sh.runner.out, `
Commands:
  get <control>          - Show the current value and maximum
  set <control> <value>  - Set a control (names or numbers)
  <control>=<value> ...  - Same as set; a value of ? queries
  list                   - Show the display's capabilities
  dump                   - Show the raw capability string
  save                   - Store the current settings in the display
  help                   - Show this help
  quit                   - Leave the shell`)
}
