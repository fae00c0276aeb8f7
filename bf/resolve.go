package bf

// Resolve returns a copy of prog with every loop instruction pointing at its matching counterpart.
func Resolve(prog Program) (Program, error) {
	ret := make(Program, len(prog))
	copy(ret, prog)
	var stack []int
	for i, inst := range ret {
		switch inst.Op {
		case OpLoopOpen:
			stack = append(stack, i)
		case OpLoopClose:
			if len(stack) == 0 {
				return nil, &UnbalancedBracketsError{
					Index: i,
					Pos:   inst.Pos,
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ret[open].Arg = i
			ret[i].Arg = open
		}
	}
	if len(stack) > 0 {
		// report the outermost unclosed bracket
		open := stack[0]
		return nil, &UnbalancedBracketsError{
			Index:    open,
			Pos:      ret[open].Pos,
			Unclosed: true,
		}
	}
	return ret, nil
}

// Compile lexes, folds and resolves source text.
func Compile(src *Source) (Program, error) {
	return Resolve(Optimize(Lex(src)))
}
