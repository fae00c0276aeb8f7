package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/logs"
	"golang.org/x/term"
)

const (
	replPrompt  = "bf> "
	inputPrompt = "in> "
)

func startREPL(
	options bf.Options,
	logger logs.Logger,
) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("repl requires a terminal on stdin")
	}

	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".taibf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      replPrompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	runREPL(rl, options, logger)
	return nil
}

// runREPL executes each line on one VM. Tape and cell pointer survive across lines.
func runREPL(
	rl *readline.Instance,
	options bf.Options,
	logger logs.Logger,
) {
	// ',' reads through readline too, stdin has a single reader
	options.Stdin = &lineInput{
		rl: rl,
	}
	options.Stdout = rl.Stdout()
	vm := bf.NewVM(nil, options)

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}

		prog, err := bf.Compile(bf.NewSource(fmt.Sprintf("repl:%d", n), line))
		if err != nil {
			fmt.Fprintln(rl.Stderr(), err.Error())
			continue
		}
		vm.Load(prog)
		for _, err := range vm.Run {
			fmt.Fprintln(rl.Stderr(), err.Error())
		}
		logger.Debug("repl line",
			"line", n,
			"instructions", len(prog),
		)
		fmt.Fprintf(rl.Stderr(), "ptr=%d cell=%d\n", vm.Ptr, vm.Cell())
	}
}

// lineInput feeds ',' from readline lines. Each line ends with '\n'.
type lineInput struct {
	rl  *readline.Instance
	buf []byte
}

func (l *lineInput) Read(p []byte) (int, error) {
	if len(l.buf) == 0 {
		l.rl.SetPrompt(inputPrompt)
		line, err := l.rl.Readline()
		l.rl.SetPrompt(replPrompt)
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		} else if err != nil {
			return 0, err
		}
		l.buf = append(l.buf, line...)
		l.buf = append(l.buf, '\n')
	}
	n := copy(p, l.buf)
	l.buf = l.buf[n:]
	return n, nil
}
