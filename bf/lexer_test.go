package bf

import (
	"testing"
)

func TestLex(t *testing.T) {
	prog := Lex(NewSource("test", "+-><[].,"))
	if len(prog) != 8 {
		t.Fatalf("got %v", prog)
	}
	want := []Op{
		OpIncrement, OpDecrement, OpMoveRight, OpMoveLeft,
		OpLoopOpen, OpLoopClose, OpOutput, OpInput,
	}
	for i, inst := range prog {
		if inst.Op != want[i] {
			t.Fatalf("%d: got %v", i, inst.Op)
		}
		if inst.Arg != 1 {
			t.Fatalf("%d: got %v", i, inst.Arg)
		}
	}
}

func TestLexComments(t *testing.T) {
	prog := Lex(NewSource("test", "hello + world 世界 - # ! \t\r\n"))
	if str := prog.String(); str != "+ -" {
		t.Fatalf("got %q", str)
	}
	if len(Lex(NewSource("test", ""))) != 0 {
		t.Fatal()
	}
	if len(Lex(NewSource("test", "no instructions here"))) != 0 {
		t.Fatal()
	}
}

func TestLexPos(t *testing.T) {
	src := NewSource("test", "+\n世 <\n\n  .")
	prog := Lex(src)
	if len(prog) != 3 {
		t.Fatalf("got %v", prog)
	}
	cases := []struct {
		line, col, offset int
	}{
		{1, 1, 0},
		{2, 3, 6},
		{4, 3, 11},
	}
	for i, c := range cases {
		pos := prog[i].Pos
		if pos.Source != src {
			t.Fatal()
		}
		if pos.Line != c.line || pos.Column != c.col || pos.Offset != c.offset {
			t.Fatalf("%d: got %+v", i, pos)
		}
	}
}
