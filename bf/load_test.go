package bf

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.b")
	if err := os.WriteFile(path, []byte(helloWorld), 0644); err != nil {
		t.Fatal(err)
	}
	out := new(bytes.Buffer)

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		load Load,
	) {

		src, err := load(path)
		if err != nil {
			t.Fatal(err)
		}
		if src.Name != path {
			t.Fatalf("got %v", src.Name)
		}
		prog, err := Compile(src)
		if err != nil {
			t.Fatal(err)
		}
		vm := NewVM(prog, Options{
			Stdout: out,
		})
		for _, err := range vm.Run {
			t.Fatal(err)
		}
		if out.String() != "Hello World!\n" {
			t.Fatalf("got %q", out.String())
		}

		_, err = load(filepath.Join(dir, "missing.b"))
		if !errors.Is(err, ErrSourceRead) {
			t.Fatalf("got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
		var e *SourceReadError
		if !errors.As(err, &e) || e.Path != filepath.Join(dir, "missing.b") {
			t.Fatalf("got %v", err)
		}
		if !errors.Is(e.Cause, fs.ErrNotExist) {
			t.Fatalf("got %v", e.Cause)
		}
		if e.Err == nil || e.Err == e.Cause {
			t.Fatalf("got %v", e.Err)
		}
		if strings.Contains(e.Error(), "\n") {
			t.Fatalf("got %q", e.Error())
		}

	})
}

func TestLoadBinaryWarns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	content := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR+.")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		load Load,
	) {
		src, err := load(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(Lex(src)) != 2 {
			t.Fatalf("got %v", Lex(src))
		}
		if !bytes.Contains(buf.Bytes(), []byte("source does not look like text")) {
			t.Fatalf("got %s", buf.String())
		}
	})
}
