package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	withLevel(t, slog.LevelDebug)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "run", "path", "a.b")
		ctx2, span2 := newSpan(ctx1, "repl")
		logger.InfoContext(ctx2, "inside")

		var lines []string
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "msg=") && !strings.Contains(line, "journal") {
				lines = append(lines, line)
			}
		}
		if len(lines) != 3 {
			t.Fatalf("got %q", lines)
		}
		if !strings.Contains(lines[0], "msg=\"begin run\"") ||
			!strings.Contains(lines[0], "path=a.b") ||
			!strings.Contains(lines[0], "span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) ||
			!strings.Contains(lines[1], "span="+string(span2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "span="+string(span2)) {
			t.Fatalf("got %v", lines[2])
		}
	})
}
