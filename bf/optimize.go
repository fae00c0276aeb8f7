package bf

// Optimize folds runs of identical arithmetic and move instructions into counted instructions.
// Loop, output and input instructions are copied as is.
func Optimize(prog Program) Program {
	if len(prog) < 2 {
		return prog
	}
	ret := make(Program, 0, len(prog))
	for _, inst := range prog {
		if n := len(ret); n > 0 &&
			inst.Op.Foldable() &&
			ret[n-1].Op == inst.Op {
			ret[n-1].Arg += inst.Arg
			continue
		}
		ret = append(ret, inst)
	}
	return ret
}
