package bf

import (
	"fmt"
	"strings"
)

// Instruction is one step of a program.
// Arg is the repeat count for foldable ops and the index of the matching bracket for loop ops.
type Instruction struct {
	Op  Op
	Arg int
	Pos Pos
}

func (i Instruction) String() string {
	switch i.Op {
	case OpLoopOpen, OpLoopClose:
		return fmt.Sprintf("%c@%d", i.Op.Char(), i.Arg)
	case OpOutput, OpInput:
		return string(i.Op.Char())
	}
	if i.Arg == 1 {
		return string(i.Op.Char())
	}
	return fmt.Sprintf("%c%d", i.Op.Char(), i.Arg)
}

type Program []Instruction

func (p Program) String() string {
	var sb strings.Builder
	for i, inst := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(inst.String())
	}
	return sb.String()
}

// Ops returns the number of source-level operations the program encodes.
func (p Program) Ops() int {
	n := 0
	for _, inst := range p {
		if inst.Op.Foldable() {
			n += inst.Arg
		} else {
			n++
		}
	}
	return n
}
