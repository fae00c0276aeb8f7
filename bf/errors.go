package bf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceRead         = errors.New("source read error")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrTapeUnderflow      = errors.New("tape underflow")
	ErrInputExhausted     = errors.New("input exhausted")
)

type SourceReadError struct {
	Path string
	// Err is Cause wrapped with a stack trace
	Err   error
	Cause error
}

func (s *SourceReadError) Error() string {
	if s.Cause != nil {
		return fmt.Sprintf("read source %s: %v", s.Path, s.Cause)
	}
	return fmt.Sprintf("read source %s: %v", s.Path, s.Err)
}

func (s *SourceReadError) Unwrap() []error {
	var errs []error
	for _, err := range []error{s.Err, s.Cause} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (s *SourceReadError) Is(target error) bool {
	return target == ErrSourceRead
}

type UnbalancedBracketsError struct {
	Index int
	Pos   Pos
	// Unclosed is true for a loop-open without a match, false for a stray loop-close
	Unclosed bool
}

func (u *UnbalancedBracketsError) Error() string {
	if u.Unclosed {
		return withPos(fmt.Sprintf("%s: unclosed '[' (instruction %d)", ErrUnbalancedBrackets, u.Index), u.Pos)
	}
	return withPos(fmt.Sprintf("%s: unmatched ']' (instruction %d)", ErrUnbalancedBrackets, u.Index), u.Pos)
}

func (u *UnbalancedBracketsError) Is(target error) bool {
	return target == ErrUnbalancedBrackets
}

type TapeUnderflowError struct {
	PC   int
	Pos  Pos
	Ptr  int
	Move int
}

func (t *TapeUnderflowError) Error() string {
	return withPos(fmt.Sprintf("%s: cell %d moved left by %d (instruction %d)", ErrTapeUnderflow, t.Ptr, t.Move, t.PC), t.Pos)
}

func (t *TapeUnderflowError) Is(target error) bool {
	return target == ErrTapeUnderflow
}

type InputExhaustedError struct {
	PC  int
	Pos Pos
}

func (i *InputExhaustedError) Error() string {
	return withPos(fmt.Sprintf("%s (instruction %d)", ErrInputExhausted, i.PC), i.Pos)
}

func (i *InputExhaustedError) Is(target error) bool {
	return target == ErrInputExhausted
}

func withPos(msg string, pos Pos) string {
	if pos.Source == nil {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", msg, pos.Source.Name, pos.Line, pos.Column))

	idx := pos.Line - 1
	if idx >= 0 && idx < len(pos.Source.Lines) {
		line := pos.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		col := pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}
