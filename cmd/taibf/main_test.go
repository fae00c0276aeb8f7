package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/taibf/cmds"
)

const helloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.`

// testDir isolates run from config files of the host and returns the working dir.
func testDir(t *testing.T) string {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAIBF_STATS", "")
	os.Unsetenv("TAIBF_STATS")
	return dir
}

func writeSource(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runArgs(t *testing.T, stdin string, args ...string) (code int, stdout string, stderr string) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	code = run(args, strings.NewReader(stdin), out, errOut)
	return code, out.String(), errOut.String()
}

func TestUsageLine(t *testing.T) {
	testDir(t)
	code, stdout, _ := runArgs(t, "")
	if code != 0 {
		t.Fatalf("got %v", code)
	}
	if stdout != "Usage: taibf <filename>\n" {
		t.Fatalf("got %q", stdout)
	}
}

func TestRunFile(t *testing.T) {
	dir := testDir(t)
	path := writeSource(t, dir, "hello.b", helloWorld)
	code, stdout, stderr := runArgs(t, "", path)
	if code != 0 {
		t.Fatalf("got %v: %s", code, stderr)
	}
	if stdout != "Hello World!\n" {
		t.Fatalf("got %q", stdout)
	}
}

func TestRunInput(t *testing.T) {
	dir := testDir(t)
	path := writeSource(t, dir, "echo.b", ",.,.")
	code, stdout, stderr := runArgs(t, "ok", path)
	if code != 0 {
		t.Fatalf("got %v: %s", code, stderr)
	}
	if stdout != "ok" {
		t.Fatalf("got %q", stdout)
	}

	code, _, stderr = runArgs(t, "", path)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if !strings.Contains(stderr, "input exhausted") {
		t.Fatalf("got %q", stderr)
	}
}

func TestRunErrors(t *testing.T) {
	dir := testDir(t)

	code, stdout, stderr := runArgs(t, "", filepath.Join(dir, "missing.b"))
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if stdout != "" || !strings.Contains(stderr, "read source") {
		t.Fatalf("got %q %q", stdout, stderr)
	}

	path := writeSource(t, dir, "open.b", "+\n+[")
	code, stdout, stderr = runArgs(t, "", path)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if stdout != "" {
		t.Fatalf("got %q", stdout)
	}
	if !strings.Contains(stderr, "unclosed '['") ||
		!strings.Contains(stderr, "open.b:2:2\n+[\n ^") {
		t.Fatalf("got %q", stderr)
	}

	path = writeSource(t, dir, "under.b", "+.<")
	code, stdout, stderr = runArgs(t, "", path)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if stdout != "\x01" {
		t.Fatalf("got %q", stdout)
	}
	if !strings.Contains(stderr, "tape underflow") {
		t.Fatalf("got %q", stderr)
	}

	code, _, stderr = runArgs(t, "", "-no-such-flag")
	if code != 2 {
		t.Fatalf("got %v", code)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Fatalf("got %q", stderr)
	}
}

func TestRunCheck(t *testing.T) {
	dir := testDir(t)
	t.Cleanup(func() {
		cmds.Execute([]string{"-check."})
	})
	path := writeSource(t, dir, "hello.b", helloWorld)

	code, stdout, stderr := runArgs(t, "", "-check", `output == "Hello World!\n" and cell(0) == 0`, path)
	if code != 0 {
		t.Fatalf("got %v: %s", code, stderr)
	}
	if stdout != "Hello World!\n" {
		t.Fatalf("got %q", stdout)
	}

	code, _, stderr = runArgs(t, "", "-check", `output == ""`, path)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if !strings.Contains(stderr, "check failed") {
		t.Fatalf("got %q", stderr)
	}
}

func TestRunStats(t *testing.T) {
	dir := testDir(t)
	t.Cleanup(func() {
		cmds.Execute([]string{"!stats"})
	})
	path := writeSource(t, dir, "hello.b", helloWorld)

	code, stdout, stderr := runArgs(t, "", "stats", path)
	if code != 0 {
		t.Fatalf("got %v: %s", code, stderr)
	}
	if stdout != "Hello World!\n" {
		t.Fatalf("got %q", stdout)
	}
	if !strings.Contains(stderr, "instructions") {
		t.Fatalf("got %q", stderr)
	}

	// the summary is printed on failure too
	path = writeSource(t, dir, "under.b", "<")
	code, _, stderr = runArgs(t, "", "stats", path)
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if !strings.Contains(stderr, "tape underflow") || !strings.Contains(stderr, "instructions") {
		t.Fatalf("got %q", stderr)
	}
}

func TestPathNamedLikeCommand(t *testing.T) {
	dir := testDir(t)
	writeSource(t, dir, "stats", "+++.")
	code, stdout, stderr := runArgs(t, "", "--", "stats")
	if code != 0 {
		t.Fatalf("got %v: %s", code, stderr)
	}
	if stdout != "\x03" {
		t.Fatalf("got %q", stdout)
	}
	if strings.Contains(stderr, "instructions") {
		t.Fatalf("stats should be off: %q", stderr)
	}
}
