package checks

import (
	"errors"
	"fmt"
)

var ErrCheckFailed = errors.New("check failed")

type FailedError struct {
	Expr  string
	Value string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("check failed: %s evaluated to %s", e.Expr, e.Value)
}

func (e *FailedError) Is(target error) bool {
	return target == ErrCheckFailed
}
