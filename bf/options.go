package bf

import (
	"fmt"
	"io"
)

type EOFPolicy string

const (
	// EOFFail stops the run with an InputExhaustedError
	EOFFail EOFPolicy = "fail"
	// EOFKeep leaves the addressed cell unchanged
	EOFKeep EOFPolicy = "keep"
)

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch p := EOFPolicy(str); p {
	case EOFFail, EOFKeep:
		return p, nil
	case "":
		return EOFFail, nil
	}
	return "", fmt.Errorf("unknown eof policy: %q", str)
}

type Options struct {
	Stdin        io.Reader // if nil, default to os.Stdin
	Stdout       io.Writer // if nil, default to os.Stdout
	InitialCells int       // if zero, default to DefaultInitialCells
	GrowChunk    int       // if zero, default to DefaultGrowChunk
	OnEOF        EOFPolicy // if empty, default to EOFFail
}
