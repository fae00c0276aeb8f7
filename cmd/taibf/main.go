package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/checks"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/stats"
	"github.com/tebeka/atexit"
)

var replMode, _ = cmds.Switch("repl", "read programs line by line, sharing one tape")

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
// Use -- before a path that collides with a command name.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	fail := func(c int, err error) int {
		fmt.Fprintln(stderr, strings.TrimRight(err.Error(), "\n"))
		return c
	}

	defer func() {
		// invalid flag or config values
		if p := recover(); p != nil {
			code = fail(2, fmt.Errorf("%v", p))
		}
	}()

	var path string
	cmds.Positional(func(arg string) error {
		if path != "" {
			return fmt.Errorf("unexpected argument: %s", arg)
		}
		path = arg
		return nil
	})
	if err := cmds.Execute(args); err != nil {
		return fail(2, err)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() logs.Writer {
			return stderr
		},
	)

	if *replMode {
		var err error
		scope.Call(func(
			options bf.Options,
			logger logs.Logger,
		) {
			err = startREPL(options, logger)
		})
		if err != nil {
			return fail(2, err)
		}
		return 0
	}

	if path == "" {
		fmt.Fprintln(stdout, "Usage: taibf <filename>")
		return 0
	}

	scope.Call(func(
		load bf.Load,
		options bf.Options,
		showStats bfconfigs.ShowStats,
		measure stats.Measure,
		expr checks.Expr,
		check checks.Check,
		logger logs.Logger,
	) {

		src, err := load(path)
		if err != nil {
			code = fail(1, err)
			return
		}
		prog, err := bf.Compile(src)
		if err != nil {
			code = fail(1, err)
			return
		}
		logger.Debug("compiled",
			"path", path,
			"instructions", len(prog),
			"ops", prog.Ops(),
		)

		output := new(bytes.Buffer)
		options.Stdin = stdin
		options.Stdout = stdout
		if expr != "" {
			options.Stdout = io.MultiWriter(stdout, output)
		}
		vm := bf.NewVM(prog, options)

		if showStats {
			report, err := measure(context.Background(), vm)
			defer func() {
				fmt.Fprintln(stderr, report.Render())
			}()
			if err != nil {
				code = fail(1, err)
				return
			}
		} else {
			for _, err := range vm.Run {
				code = fail(1, err)
				return
			}
		}

		if expr != "" {
			if err := check(expr, vm, output.Bytes()); err != nil {
				code = fail(1, err)
				return
			}
		}
	})

	return
}
