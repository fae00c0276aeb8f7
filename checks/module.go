package checks

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Expr is a starlark expression evaluated after the run. Empty means no check.
type Expr string

var exprFlag = cmds.Var[string]("-check", "starlark expression over output, tape, ptr, pc and cell(i) that must hold after the run")

func (Module) Expr() Expr {
	return Expr(*exprFlag)
}
