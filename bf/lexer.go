package bf

// Lex extracts instructions from source text. Characters outside the instruction set are comments.
func Lex(src *Source) Program {
	var ret Program
	line, col := 1, 0
	for offset, r := range src.Content {
		col++
		if r == '\n' {
			line++
			col = 0
			continue
		}
		op := opOf(r)
		if op == 0 {
			continue
		}
		ret = append(ret, Instruction{
			Op:  op,
			Arg: 1,
			Pos: Pos{
				Source: src,
				Offset: offset,
				Line:   line,
				Column: col,
			},
		})
	}
	return ret
}
