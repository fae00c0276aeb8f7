package bf

type Op uint8

const (
	OpIncrement Op = iota + 1
	OpDecrement
	OpMoveRight
	OpMoveLeft
	OpLoopOpen
	OpLoopClose
	OpOutput
	OpInput
)

var opChars = [...]byte{
	OpIncrement: '+',
	OpDecrement: '-',
	OpMoveRight: '>',
	OpMoveLeft:  '<',
	OpLoopOpen:  '[',
	OpLoopClose: ']',
	OpOutput:    '.',
	OpInput:     ',',
}

var opNames = [...]string{
	OpIncrement: "increment",
	OpDecrement: "decrement",
	OpMoveRight: "move-right",
	OpMoveLeft:  "move-left",
	OpLoopOpen:  "loop-open",
	OpLoopClose: "loop-close",
	OpOutput:    "output",
	OpInput:     "input",
}

func (o Op) String() string {
	if o == 0 || int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}

// Char returns the source character of the op, or 0 for unknown ops.
func (o Op) Char() byte {
	if int(o) >= len(opChars) {
		return 0
	}
	return opChars[o]
}

// Foldable reports whether consecutive instructions of this op can merge into one counted instruction.
func (o Op) Foldable() bool {
	switch o {
	case OpIncrement, OpDecrement, OpMoveRight, OpMoveLeft:
		return true
	}
	return false
}

func opOf(c rune) Op {
	switch c {
	case '+':
		return OpIncrement
	case '-':
		return OpDecrement
	case '>':
		return OpMoveRight
	case '<':
		return OpMoveLeft
	case '[':
		return OpLoopOpen
	case ']':
		return OpLoopClose
	case '.':
		return OpOutput
	case ',':
		return OpInput
	}
	return 0
}
