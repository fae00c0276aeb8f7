package bfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type InitialCells int

var initialCellsFlag = cmds.Var[int]("-initial-cells", "number of tape cells allocated before the run")

func (Module) InitialCells(
	loader configs.Loader,
) InitialCells {
	n := vars.FirstNonZero(
		*initialCellsFlag,
		configs.First[int](loader, "initial_cells"),
		bf.DefaultInitialCells,
	)
	if n < 0 {
		panic(fmt.Errorf("initial cells must not be negative: %d", n))
	}
	return InitialCells(n)
}

type GrowChunk int

var growChunkFlag = cmds.Var[int]("-grow-chunk", "extra cells allocated on each tape growth")

func (Module) GrowChunk(
	loader configs.Loader,
) GrowChunk {
	n := vars.FirstNonZero(
		*growChunkFlag,
		configs.First[int](loader, "grow_chunk"),
		bf.DefaultGrowChunk,
	)
	if n <= 0 {
		panic(fmt.Errorf("grow chunk must be positive: %d", n))
	}
	return GrowChunk(n)
}

type OnEOF bf.EOFPolicy

var onEOFFlag = cmds.Var[string]("-on-eof", "behavior of ',' at end of input: fail or keep")

func (Module) OnEOF(
	loader configs.Loader,
) OnEOF {
	policy, err := bf.ParseEOFPolicy(vars.FirstNonZero(
		*onEOFFlag,
		configs.First[string](loader, "on_eof"),
	))
	if err != nil {
		panic(err)
	}
	return OnEOF(policy)
}

func (Module) Options(
	cells InitialCells,
	chunk GrowChunk,
	onEOF OnEOF,
) bf.Options {
	return bf.Options{
		InitialCells: int(cells),
		GrowChunk:    int(chunk),
		OnEOF:        bf.EOFPolicy(onEOF),
	}
}
