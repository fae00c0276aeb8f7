package bf

import (
	"errors"
	"fmt"
	"io"
	"os"
)

type VM struct {
	Program Program
	Tape    Tape
	PC      int
	Ptr     int

	stdin     io.Reader
	stdout    io.Writer
	growChunk int
	onEOF     EOFPolicy
	buf       [1]byte
}

func NewVM(prog Program, options Options) *VM {
	vm := &VM{
		Program:   prog,
		stdin:     options.Stdin,
		stdout:    options.Stdout,
		growChunk: options.GrowChunk,
		onEOF:     options.OnEOF,
	}
	if vm.stdin == nil {
		vm.stdin = os.Stdin
	}
	if vm.stdout == nil {
		vm.stdout = os.Stdout
	}
	if vm.growChunk <= 0 {
		vm.growChunk = DefaultGrowChunk
	}
	if vm.onEOF == "" {
		vm.onEOF = EOFFail
	}
	cells := options.InitialCells
	if cells <= 0 {
		cells = DefaultInitialCells
	}
	vm.Tape = make(Tape, cells)
	return vm
}

func (v *VM) Halted() bool {
	return v.PC >= len(v.Program)
}

// Cell returns the addressed cell.
func (v *VM) Cell() byte {
	return v.Tape[v.Ptr]
}

// Load replaces the program and rewinds the program counter. Tape and cell pointer are kept.
func (v *VM) Load(prog Program) {
	v.Program = prog
	v.PC = 0
}

// Step executes the instruction at PC. A failing instruction leaves the state untouched.
func (v *VM) Step() error {
	if v.PC >= len(v.Program) {
		return nil
	}
	inst := v.Program[v.PC]

	switch inst.Op {

	case OpIncrement:
		v.Tape[v.Ptr] += byte(inst.Arg)

	case OpDecrement:
		v.Tape[v.Ptr] -= byte(inst.Arg)

	case OpMoveRight:
		ptr := v.Ptr + inst.Arg
		if ptr >= len(v.Tape) {
			v.Tape = v.Tape.Grow(ptr+1, v.growChunk)
		}
		v.Ptr = ptr

	case OpMoveLeft:
		if inst.Arg > v.Ptr {
			return &TapeUnderflowError{
				PC:   v.PC,
				Pos:  inst.Pos,
				Ptr:  v.Ptr,
				Move: inst.Arg,
			}
		}
		v.Ptr -= inst.Arg

	case OpLoopOpen:
		if v.Tape[v.Ptr] == 0 {
			v.PC = inst.Arg + 1
			return nil
		}

	case OpLoopClose:
		if v.Tape[v.Ptr] != 0 {
			v.PC = inst.Arg + 1
			return nil
		}

	case OpOutput:
		v.buf[0] = v.Tape[v.Ptr]
		if _, err := v.stdout.Write(v.buf[:]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

	case OpInput:
		_, err := io.ReadFull(v.stdin, v.buf[:])
		if errors.Is(err, io.EOF) {
			if v.onEOF != EOFKeep {
				return &InputExhaustedError{
					PC:  v.PC,
					Pos: inst.Pos,
				}
			}
		} else if err != nil {
			return fmt.Errorf("read input: %w", err)
		} else {
			v.Tape[v.Ptr] = v.buf[0]
		}

	default:
		return fmt.Errorf("unknown op %d at instruction %d", inst.Op, v.PC)
	}

	v.PC++
	return nil
}
