package checks

import (
	"fmt"

	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set: true,
}

// Check evaluates expr against the final machine state and the bytes the run wrote.
// A falsy result is a *FailedError.
type Check func(expr Expr, vm *bf.VM, output []byte) error

func (Module) Check(
	logger logs.Logger,
) Check {
	return func(expr Expr, vm *bf.VM, output []byte) error {
		globals := make(starlark.StringDict)
		for name, value := range map[string]any{
			"output": string(output),
			"tape":   vm.Tape,
			"ptr":    vm.Ptr,
			"pc":     vm.PC,
			"halted": vm.Halted(),
			// cells past the end of the tape were never touched and read as zero
			"cell": func(i int) int {
				if i < 0 || i >= len(vm.Tape) {
					return 0
				}
				return int(vm.Tape[i])
			},
		} {
			globals[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "check",
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "check", string(expr), globals)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", expr, err)
		}

		logger.Debug("check",
			"expr", expr,
			"value", value.String(),
		)
		if !value.Truth() {
			return &FailedError{
				Expr:  string(expr),
				Value: value.String(),
			}
		}
		return nil
	}
}
