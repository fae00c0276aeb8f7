package stats

import (
	"context"
	"time"

	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/logs"
)

// Measure runs vm to completion one Step at a time, counting what was executed.
// The returned Report is valid on error too, covering instructions retired before the failure.
type Measure func(ctx context.Context, vm *bf.VM) (Report, error)

func (Module) Measure(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Measure {
	return func(ctx context.Context, vm *bf.VM) (report Report, err error) {
		ctx, _ = newSpan(ctx, "measured run",
			"instructions", len(vm.Program),
		)

		start := time.Now()
		defer func() {
			report.Elapsed = time.Since(start)
			report.TapeCells = len(vm.Tape)
			logger.DebugContext(ctx, "run finished",
				"elapsed", report.Elapsed,
				"retired", report.Retired,
				"ops", report.Ops,
				"error", err,
			)
		}()

		for !vm.Halted() {
			inst := vm.Program[vm.PC]
			if err = vm.Step(); err != nil {
				return
			}
			report.Retired++
			if inst.Op.Foldable() {
				report.Ops += int64(inst.Arg)
			} else {
				report.Ops++
			}
		}

		return
	}
}
