package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/checks"
	"github.com/reusee/taibf/stats"
)

type Module struct {
	dscope.Module
	BF      bf.Module
	Configs bfconfigs.Module
	Stats   stats.Module
	Checks  checks.Module
}
