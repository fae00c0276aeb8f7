package cmds

import (
	"bytes"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(int) {}).Desc("QUX").Arg("N"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("size", Func(func(int) {}))

	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	want := "-h (help, -help, --help)\tprint this usage\n" +
		"foo\tFOO\n" +
		"  bar\tBAR\n" +
		"  baz\tBAZ\n" +
		"    qux <N>\tQUX\n" +
		"size <int>\n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}
